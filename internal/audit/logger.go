package audit

//go:generate mockgen -source=./logger.go -destination=../mocks/mock_audit_logger.go -package=mocks Logger

import (
	"context"

	"github.com/dangerclosesec/vizboard/internal/model"
)

// Logger defines the interface for auditing access decisions and membership changes
type Logger interface {
	// LogAccessCheck records the outcome of one authorization check
	LogAccessCheck(
		ctx context.Context,
		subject model.Subject,
		permission string,
		object model.Entity,
		allowed bool,
		contextData map[string]interface{},
	) error

	// LogMembershipChange records a member being added to or removed from a team
	LogMembershipChange(
		ctx context.Context,
		action string,
		team model.Entity,
		member model.Subject,
		role model.TeamRole,
	) error

	// LogTeamDisbanded records a team deletion and how many datasets fell back to PRIVATE
	LogTeamDisbanded(
		ctx context.Context,
		team model.Entity,
		actor model.Subject,
		reassignedDatasets int64,
	) error
}

// RequestInfo is the HTTP request metadata attached to audit entries
type RequestInfo struct {
	RequestID string
	ClientIP  string
	UserAgent string
}

type requestInfoKey struct{}

// WithRequestInfo stores request metadata for later audit writes
func WithRequestInfo(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

// RequestInfoFromContext returns the request metadata, if any was stored
func RequestInfoFromContext(ctx context.Context) (RequestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey{}).(RequestInfo)
	return info, ok
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

func (l *NoOpLogger) LogAccessCheck(
	ctx context.Context,
	subject model.Subject,
	permission string,
	object model.Entity,
	allowed bool,
	contextData map[string]interface{},
) error {
	return nil
}

func (l *NoOpLogger) LogMembershipChange(
	ctx context.Context,
	action string,
	team model.Entity,
	member model.Subject,
	role model.TeamRole,
) error {
	return nil
}

func (l *NoOpLogger) LogTeamDisbanded(
	ctx context.Context,
	team model.Entity,
	actor model.Subject,
	reassignedDatasets int64,
) error {
	return nil
}
