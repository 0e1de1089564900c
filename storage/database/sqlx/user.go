package sqlxrepos

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/mwendwa/elimika/core/cluster"
	"github.com/mwendwa/elimika/core/user"
)

type UserRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// userRow mirrors the "user" table. Grades is stored as jsonb.
type userRow struct {
	ID           int            `db:"id"`
	Name         string         `db:"name"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	IsActive     bool           `db:"is_active"`
	Roles        pq.StringArray `db:"roles"`
	PasswordHash []byte         `db:"password_hash"`
	GoogleID     string         `db:"google_id"`
	School       string         `db:"school"`
	County       string         `db:"county"`
	KCSEYear     int            `db:"kcse_year"`
	Bio          string         `db:"bio"`
	AvatarURL    string         `db:"avatar_url"`
	Grades       []byte         `db:"grades"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	LastLogin    time.Time      `db:"last_login"`
}

const userColumns = `id, name, username, email, is_active, roles, password_hash, google_id,
school, county, kcse_year, bio, avatar_url, grades, created_at, updated_at, last_login`

func (row *userRow) toUser() (user.User, error) {
	grades := make(map[string]cluster.Grade)
	if len(row.Grades) > 0 {
		if err := json.Unmarshal(row.Grades, &grades); err != nil {
			return user.User{}, errors.Wrap(err, "decoding grades")
		}
	}
	return user.User{
		ID:           row.ID,
		Name:         row.Name,
		Username:     row.Username,
		Email:        row.Email,
		IsActive:     row.IsActive,
		Roles:        row.Roles,
		PasswordHash: row.PasswordHash,
		GoogleID:     row.GoogleID,
		Profile: user.Profile{
			School:    row.School,
			County:    row.County,
			KCSEYear:  row.KCSEYear,
			Bio:       row.Bio,
			AvatarURL: row.AvatarURL,
			Grades:    grades,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		LastLogin: row.LastLogin,
	}, nil
}

func fromUser(usr user.User) (userRow, error) {
	grades := usr.Profile.Grades
	if grades == nil {
		grades = map[string]cluster.Grade{}
	}
	gradesJSON, err := json.Marshal(grades)
	if err != nil {
		return userRow{}, errors.Wrap(err, "encoding grades")
	}
	return userRow{
		ID:           usr.ID,
		Name:         usr.Name,
		Username:     usr.Username,
		Email:        usr.Email,
		IsActive:     usr.IsActive,
		Roles:        pq.StringArray(usr.Roles),
		PasswordHash: usr.PasswordHash,
		GoogleID:     usr.GoogleID,
		School:       usr.Profile.School,
		County:       usr.Profile.County,
		KCSEYear:     usr.Profile.KCSEYear,
		Bio:          usr.Profile.Bio,
		AvatarURL:    usr.Profile.AvatarURL,
		Grades:       gradesJSON,
		CreatedAt:    usr.CreatedAt,
		UpdatedAt:    usr.UpdatedAt,
		LastLogin:    usr.LastLogin,
	}, nil
}

func rowsToUsers(rows []userRow) ([]user.User, error) {
	users := make([]user.User, 0, len(rows))
	for i := range rows {
		usr, err := rows[i].toUser()
		if err != nil {
			return nil, err
		}
		users = append(users, usr)
	}
	return users, nil
}

func (repo *UserRepository) CheckUsernameUniqueness(username, email string, excludedUsers ...user.User) error {
	exclIDs := pq.Array(userIDs(excludedUsers))

	var exists bool
	q := `SELECT EXISTS (SELECT 1 FROM "user" WHERE lower(username) = lower($1) AND NOT (id = ANY ($2)))`
	if err := repo.db.Get(&exists, q, username, exclIDs); err != nil {
		return errors.Wrap(err, "checking username")
	}
	if exists {
		return user.ErrUsernameExists
	}

	if email == "" {
		return nil
	}
	q = `SELECT EXISTS (SELECT 1 FROM "user" WHERE lower(email) = lower($1) AND NOT (id = ANY ($2)))`
	if err := repo.db.Get(&exists, q, email, exclIDs); err != nil {
		return errors.Wrap(err, "checking email")
	}
	if exists {
		return user.ErrEmailExists
	}
	return nil
}

func (repo *UserRepository) CreateUser(usr user.User) (user.User, error) {
	row, err := fromUser(usr)
	if err != nil {
		return user.User{}, err
	}
	q := `INSERT INTO "user" (name, username, email, is_active, roles, password_hash, google_id,
school, county, kcse_year, bio, avatar_url, grades, created_at, updated_at)
VALUES (:name, :username, :email, :is_active, :roles, :password_hash, :google_id,
:school, :county, :kcse_year, :bio, :avatar_url, :grades, :created_at, :updated_at)
RETURNING id`
	stmt, err := repo.db.PrepareNamed(q)
	if err != nil {
		return user.User{}, errors.Wrap(err, "preparing user insert")
	}
	defer func() { _ = stmt.Close() }()

	if err = stmt.Get(&usr.ID, row); err != nil {
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return usr, nil
}

func (repo *UserRepository) QueryAllUsers() ([]user.User, error) {
	var rows []userRow
	q := fmt.Sprintf(`SELECT %s FROM "user" ORDER BY id`, userColumns)
	if err := repo.db.Select(&rows, q); err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	return rowsToUsers(rows)
}

func (repo *UserRepository) getUser(where string, args ...interface{}) (user.User, error) {
	var row userRow
	q := fmt.Sprintf(`SELECT %s FROM "user" WHERE %s`, userColumns, where)
	if err := repo.db.Get(&row, q, args...); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "getting user")
	}
	return row.toUser()
}

func (repo *UserRepository) GetUserByID(id int) (user.User, error) {
	return repo.getUser("id = $1", id)
}

func (repo *UserRepository) GetUserByUsername(username string) (user.User, error) {
	return repo.getUser("lower(username) = lower($1)", username)
}

func (repo *UserRepository) GetUserByEmail(email string) (user.User, error) {
	return repo.getUser("lower(email) = lower($1) AND email <> ''", email)
}

func (repo *UserRepository) GetUserByUsernameOrEmail(username string) (user.User, error) {
	return repo.getUser("lower(username) = lower($1) OR (lower(email) = lower($1) AND email <> '')", username)
}

func (repo *UserRepository) GetUserByGoogleID(googleID string) (user.User, error) {
	return repo.getUser("google_id = $1 AND google_id <> ''", googleID)
}

func (repo *UserRepository) FilterUsers(filter user.QueryFilter) ([]user.User, error) {
	var (
		clauses []string
		args    []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		clauses = append(clauses, fmt.Sprintf("(name ILIKE %[1]s OR username ILIKE %[1]s OR email ILIKE %[1]s)", p))
	}
	if len(filter.Roles) > 0 {
		// prefix match, "mentor:" also selects scoped mentor roles
		var likes []string
		for _, role := range filter.Roles {
			likes = append(likes, fmt.Sprintf("r LIKE %s", arg(role+"%")))
		}
		clauses = append(clauses, fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(roles) r WHERE %s)", strings.Join(likes, " OR ")))
	}
	if filter.IsActive != nil {
		clauses = append(clauses, fmt.Sprintf("is_active = %s", arg(*filter.IsActive)))
	}
	if !filter.CreatedFrom.IsZero() {
		clauses = append(clauses, fmt.Sprintf("created_at >= %s", arg(filter.CreatedFrom)))
	}
	if !filter.CreatedTo.IsZero() {
		clauses = append(clauses, fmt.Sprintf("created_at <= %s", arg(filter.CreatedTo)))
	}

	q := fmt.Sprintf(`SELECT %s FROM "user"`, userColumns)
	if len(clauses) > 0 {
		q += " WHERE " + strings.Join(clauses, " AND ")
	}
	q += " ORDER BY id"

	var rows []userRow
	if err := repo.db.Select(&rows, q, args...); err != nil {
		return nil, errors.Wrap(err, "filtering users")
	}
	return rowsToUsers(rows)
}

func (repo *UserRepository) UpdateUser(usr user.User, isActive *bool, profile *user.Profile) (user.User, error) {
	orig, err := repo.GetUserByID(usr.ID)
	if err != nil {
		return user.User{}, err
	}

	if usr.Name != "" {
		orig.Name = usr.Name
	}
	if usr.Username != "" {
		orig.Username = usr.Username
	}
	if usr.Email != "" {
		orig.Email = usr.Email
	}
	if len(usr.Roles) > 0 {
		orig.Roles = usr.Roles
	}
	if len(usr.PasswordHash) > 0 {
		orig.PasswordHash = usr.PasswordHash
	}
	if usr.GoogleID != "" {
		orig.GoogleID = usr.GoogleID
	}
	if isActive != nil {
		orig.IsActive = *isActive
	}
	if profile != nil {
		orig.Profile = *profile
	}
	orig.UpdatedAt = usr.UpdatedAt
	if orig.UpdatedAt.IsZero() {
		orig.UpdatedAt = time.Now().UTC()
	}

	row, err := fromUser(orig)
	if err != nil {
		return user.User{}, err
	}
	q := `UPDATE "user" SET name = :name, username = :username, email = :email, is_active = :is_active,
roles = :roles, password_hash = :password_hash, google_id = :google_id,
school = :school, county = :county, kcse_year = :kcse_year, bio = :bio, avatar_url = :avatar_url,
grades = :grades, updated_at = :updated_at
WHERE id = :id`
	if _, err = repo.db.NamedExec(q, row); err != nil {
		return user.User{}, errors.Wrap(err, "updating user")
	}
	return orig, nil
}

func (repo *UserRepository) SetLastLogin(id int, at time.Time) error {
	res, err := repo.db.Exec(`UPDATE "user" SET last_login = $1 WHERE id = $2`, at, id)
	if err != nil {
		return errors.Wrap(err, "setting last login")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (repo *UserRepository) DeleteUsersByID(ids ...int) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := repo.db.Exec(`DELETE FROM "user" WHERE id = ANY ($1)`, pq.Array(ids)); err != nil {
		return errors.Wrap(err, "deleting users")
	}
	return nil
}

func userIDs(users []user.User) []int {
	ids := make([]int, 0, len(users))
	for _, usr := range users {
		ids = append(ids, usr.ID)
	}
	return ids
}
