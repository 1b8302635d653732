package profile

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"devconnect/internal/domain/post"
	"devconnect/internal/domain/profile"
	"devconnect/internal/domain/user"
	"devconnect/pkg/apperror"
)

// In-memory aggregate store mirroring the partial-overwrite and
// serialized read-modify-write semantics of the postgres repo.
type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*profile.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*profile.Profile)}
}

func cloneProfile(p *profile.Profile) *profile.Profile {
	c := *p
	c.Skills = append([]string(nil), p.Skills...)
	c.Experience = append([]profile.Experience(nil), p.Experience...)
	c.Education = append([]profile.Education(nil), p.Education...)
	return &c
}

func (r *fakeProfileRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[ownerID]
	if !ok {
		return nil, apperror.NewNotFound("profile", ownerID.String())
	}
	return cloneProfile(p), nil
}

func (r *fakeProfileRepo) List(ctx context.Context) ([]*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*profile.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, cloneProfile(p))
	}
	return out, nil
}

func mergeSocial(dst *profile.Social, src profile.Social) {
	if src.Youtube != nil {
		dst.Youtube = src.Youtube
	}
	if src.Twitter != nil {
		dst.Twitter = src.Twitter
	}
	if src.Facebook != nil {
		dst.Facebook = src.Facebook
	}
	if src.Linkedin != nil {
		dst.Linkedin = src.Linkedin
	}
	if src.Instagram != nil {
		dst.Instagram = src.Instagram
	}
}

func (r *fakeProfileRepo) Upsert(ctx context.Context, ownerID uuid.UUID, fields profile.UpsertFields) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[ownerID]
	if !ok {
		p = &profile.Profile{
			OwnerID:    ownerID,
			Experience: []profile.Experience{},
			Education:  []profile.Education{},
		}
		r.profiles[ownerID] = p
	}

	p.Status = fields.Status
	p.Skills = append([]string(nil), fields.Skills...)
	if fields.Company != nil {
		p.Company = fields.Company
	}
	if fields.Website != nil {
		p.Website = fields.Website
	}
	if fields.Location != nil {
		p.Location = fields.Location
	}
	if fields.Bio != nil {
		p.Bio = fields.Bio
	}
	if fields.GithubUsername != nil {
		p.GithubUsername = fields.GithubUsername
	}
	mergeSocial(&p.Social, fields.Social)

	return cloneProfile(p), nil
}

func (r *fakeProfileRepo) Mutate(ctx context.Context, ownerID uuid.UUID, fn func(*profile.Profile) error) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[ownerID]
	if !ok {
		return nil, apperror.NewNotFound("profile", ownerID.String())
	}

	working := cloneProfile(p)
	if err := fn(working); err != nil {
		return nil, err
	}
	r.profiles[ownerID] = working
	return cloneProfile(working), nil
}

func (r *fakeProfileRepo) Delete(ctx context.Context, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, ownerID)
	return nil
}

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*user.User
	deleteErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", email)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperror.NewNotFound("user", id.String())
	}
	return u, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.users[id]; !ok {
		return apperror.NewNotFound("user", id.String())
	}
	delete(r.users, id)
	return nil
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[uuid.UUID]*post.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uuid.UUID]*post.Post)}
}

func (r *fakePostRepo) Save(ctx context.Context, p *post.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[p.ID] = p
	return nil
}

func (r *fakePostRepo) List(ctx context.Context) ([]*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*post.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePostRepo) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, apperror.NewNotFound("post", id.String())
	}
	return p, nil
}

func (r *fakePostRepo) Mutate(ctx context.Context, id uuid.UUID, fn func(*post.Post) error) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, apperror.NewNotFound("post", id.String())
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.posts {
		if p.OwnerID == ownerID {
			delete(r.posts, id)
		}
	}
	return nil
}

type fakeDenylist struct {
	mu     sync.Mutex
	denied map[uuid.UUID]bool
}

func newFakeDenylist() *fakeDenylist {
	return &fakeDenylist{denied: make(map[uuid.UUID]bool)}
}

func (d *fakeDenylist) Deny(ctx context.Context, userID uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.denied[userID] = true
	return nil
}

func (d *fakeDenylist) IsDenied(ctx context.Context, userID uuid.UUID) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.denied[userID], nil
}
