package components

import (
	"stay-admin/internal/infra/repository"
	"stay-admin/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewAuditRepository,
			fx.As(new(shared.AuditRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}
