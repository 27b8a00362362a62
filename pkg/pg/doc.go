// Package pg provides PostgreSQL plumbing for the kit's stores: a pgx/v5
// connection pool with retrying Connect, goose schema migrations, a health
// check closure, and SQLSTATE helpers used to map constraint violations to
// domain errors.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//		return err
//	}
//
//	identities := credential.NewPostgresStore(pool)
//	sessions := session.NewPostgresStore(pool)
package pg
