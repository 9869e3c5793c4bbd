package memory

import (
	"context"

	"github.com/99minutos/commerce-api/internal/core/domain"
)

// UserRepository is the user view of a DB.
type UserRepository struct {
	db *DB
}

// Users returns the user repository.
func (db *DB) Users() *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	r.db.usersMu.RLock()
	defer r.db.usersMu.RUnlock()

	out := make([]domain.User, len(r.db.users))
	for i, u := range r.db.users {
		out[i] = u.Clone()
	}
	return out, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.ID == id })
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Email == email })
}

func (r *UserRepository) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}
	return r.find(func(u domain.User) bool { return u.Token == token })
}

func (r *UserRepository) find(match func(domain.User) bool) (*domain.User, error) {
	r.db.usersMu.RLock()
	defer r.db.usersMu.RUnlock()

	for _, u := range r.db.users {
		if match(u) {
			c := u.Clone()
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create appends u under the next sequential id, refusing a taken email.
func (r *UserRepository) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	r.db.usersMu.Lock()
	defer r.db.usersMu.Unlock()

	if r.emailTakenLocked(u.Email, 0) {
		return nil, domain.ErrEmailAlreadyExists
	}

	r.db.userSeq++
	u = u.Clone()
	u.ID = r.db.userSeq
	r.db.users = append(r.db.users, u)
	publish(r.db, domain.KindUsers, r.db.users, domain.User.Clone)

	c := u.Clone()
	return &c, nil
}

// Update applies fn to a working copy. The change is rejected with
// ErrEmailConflict when the resulting email belongs to another user.
func (r *UserRepository) Update(ctx context.Context, id int, fn func(u *domain.User) error) (*domain.User, error) {
	r.db.usersMu.Lock()
	defer r.db.usersMu.Unlock()

	for i := range r.db.users {
		if r.db.users[i].ID != id {
			continue
		}
		work := r.db.users[i].Clone()
		if err := fn(&work); err != nil {
			return nil, err
		}
		if r.emailTakenLocked(work.Email, id) {
			return nil, domain.ErrEmailConflict
		}
		work.ID = id
		r.db.users[i] = work
		publish(r.db, domain.KindUsers, r.db.users, domain.User.Clone)

		c := work.Clone()
		return &c, nil
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) Delete(ctx context.Context, id int) (*domain.User, error) {
	r.db.usersMu.Lock()
	defer r.db.usersMu.Unlock()

	for i, u := range r.db.users {
		if u.ID == id {
			r.db.users = append(r.db.users[:i], r.db.users[i+1:]...)
			publish(r.db, domain.KindUsers, r.db.users, domain.User.Clone)
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// emailTakenLocked reports whether a user other than exceptID owns email.
func (r *UserRepository) emailTakenLocked(email string, exceptID int) bool {
	for _, u := range r.db.users {
		if u.Email == email && u.ID != exceptID {
			return true
		}
	}
	return false
}
