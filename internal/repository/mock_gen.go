// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./team.go -destination=../mocks/mock_team_repository.go -package=mocks TeamRepositoryIface
//go:generate mockgen -source=./dataset.go -destination=../mocks/mock_dataset_repository.go -package=mocks DatasetRepositoryIface
//go:generate mockgen -source=./visualization.go -destination=../mocks/mock_visualization_repository.go -package=mocks VisualizationRepositoryIface
//go:generate mockgen -source=./comment.go -destination=../mocks/mock_comment_repository.go -package=mocks CommentRepositoryIface
//go:generate mockgen -source=./authz_audit_log.go -destination=../mocks/mock_authz_audit_log_repository.go -package=mocks AuthzAuditLogRepositoryIface
