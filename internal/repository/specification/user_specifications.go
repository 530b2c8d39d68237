package specification

import "gorm.io/gorm"

// BySupabaseID resolves a user row from the identity provider's subject id
type BySupabaseID struct {
	SupabaseID string
}

func (s BySupabaseID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("supabase_id = ?", s.SupabaseID)
}
