package chatbot

import "context"

// Turn is a single conversation turn handed to a Provider. Role uses the
// application vocabulary ("user" / "ai"); providers translate to their own
// wire vocabulary as needed.
type Turn struct {
	Role string
	Text string
}

const (
	RoleUser = "user"
	RoleAi   = "ai"
)

// Provider generates a reply given the conversation so far. The last turn is
// the message being answered. An empty reply with a nil error means the model
// returned nothing usable; callers decide what to do with that.
type Provider interface {
	Generate(ctx context.Context, turns []Turn) (string, error)
}
