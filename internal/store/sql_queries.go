package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gduarte/cadastro-api/models"
)

const (
	createUser = `INSERT INTO users (id, email, name, password)
    VALUES ($1, $2, $3, $4)
    RETURNING id, email, name, password, created_at;`

	findUserByEmail = `SELECT id, email, name, password, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, name, password, created_at
    FROM users
    WHERE id = $1;`

	findAllUsers = `SELECT id, email, name, password, created_at
    FROM users
    ORDER BY created_at;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectPublicUsersQuery builds the projected listing query. The
// SELECT list is restricted to the credential-free columns so password
// hashes never leave the database for the public listing.
func buildSelectPublicUsersQuery() (string, []any, error) {
	query, args, err := psql.
		Select("id", "name", "email").
		From("users").
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery dynamically builds the sparse-patch UPDATE query.
// Only fields present in the patch produce SET clauses; squirrel rejects
// an update with no SET clause, which is mapped to ErrBuildingSQLQuery.
func buildUpdateUserQuery(id string, patch models.UserPatch) (string, []any, error) {
	update := psql.Update("users")

	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}

	if patch.Password != nil {
		update = update.Set("password", *patch.Password)
	}

	query, args, err := update.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, email, name, password, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
