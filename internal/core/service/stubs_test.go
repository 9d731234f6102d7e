package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cleancity/waste-collection-api/internal/core/domain"
	"github.com/cleancity/waste-collection-api/internal/core/ports"
)

// In-memory stand-ins for the Mongo repositories. They mirror the
// repository contracts, including idempotent deletes and the area-or-
// assignee union query.

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user_%d", r.seq)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

type stubCleanerRepo struct {
	cleaners map[string]*domain.Cleaner
	seq      int
}

func newStubCleanerRepo() *stubCleanerRepo {
	return &stubCleanerRepo{cleaners: make(map[string]*domain.Cleaner)}
}

func cloneCleaner(c *domain.Cleaner) *domain.Cleaner {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCleanerRepo) Create(_ context.Context, cleaner *domain.Cleaner) (*domain.Cleaner, error) {
	for _, c := range r.cleaners {
		if c.Email == cleaner.Email {
			return nil, domain.ErrCleanerExists
		}
		if c.VehicleNumber == cleaner.VehicleNumber {
			return nil, domain.ErrVehicleExists
		}
	}
	r.seq++
	copy := cloneCleaner(cleaner)
	copy.ID = fmt.Sprintf("cleaner_%d", r.seq)
	r.cleaners[copy.ID] = cloneCleaner(copy)
	return copy, nil
}

func (r *stubCleanerRepo) FindByEmail(_ context.Context, email string) (*domain.Cleaner, error) {
	for _, c := range r.cleaners {
		if c.Email == email {
			return cloneCleaner(c), nil
		}
	}
	return nil, domain.ErrCleanerNotFound
}

func (r *stubCleanerRepo) FindByVehicleNumber(_ context.Context, vehicleNumber string) (*domain.Cleaner, error) {
	for _, c := range r.cleaners {
		if c.VehicleNumber == vehicleNumber {
			return cloneCleaner(c), nil
		}
	}
	return nil, domain.ErrCleanerNotFound
}

func (r *stubCleanerRepo) FindByID(_ context.Context, id string) (*domain.Cleaner, error) {
	if c, ok := r.cleaners[id]; ok {
		return cloneCleaner(c), nil
	}
	return nil, domain.ErrCleanerNotFound
}

func (r *stubCleanerRepo) List(_ context.Context) ([]*domain.Cleaner, error) {
	out := make([]*domain.Cleaner, 0, len(r.cleaners))
	for _, c := range r.cleaners {
		out = append(out, cloneCleaner(c))
	}
	return out, nil
}

func (r *stubCleanerRepo) UpdateStatus(_ context.Context, id string, status domain.CleanerStatus, location string) (*domain.Cleaner, error) {
	c, ok := r.cleaners[id]
	if !ok {
		return nil, domain.ErrCleanerNotFound
	}
	c.Status = status
	c.CurrentLocation = location
	return cloneCleaner(c), nil
}

func (r *stubCleanerRepo) UpdateArea(_ context.Context, id, area string) (*domain.Cleaner, error) {
	c, ok := r.cleaners[id]
	if !ok {
		return nil, domain.ErrCleanerNotFound
	}
	c.AssignedArea = area
	return cloneCleaner(c), nil
}

func (r *stubCleanerRepo) Delete(_ context.Context, id string) error {
	delete(r.cleaners, id)
	return nil
}

// rename mutates a stored cleaner directly, simulating an out-of-band
// profile change after a snapshot was taken.
func (r *stubCleanerRepo) rename(id, name string) {
	if c, ok := r.cleaners[id]; ok {
		c.Name = name
	}
}

type stubComplaintRepo struct {
	complaints map[string]*domain.Complaint
	seq        int
}

func newStubComplaintRepo() *stubComplaintRepo {
	return &stubComplaintRepo{complaints: make(map[string]*domain.Complaint)}
}

func cloneComplaint(c *domain.Complaint) *domain.Complaint {
	if c == nil {
		return nil
	}
	clone := *c
	if c.CollectionDate != nil {
		d := *c.CollectionDate
		clone.CollectionDate = &d
	}
	return &clone
}

func (r *stubComplaintRepo) Create(_ context.Context, complaint *domain.Complaint) (*domain.Complaint, error) {
	r.seq++
	copy := cloneComplaint(complaint)
	copy.ID = fmt.Sprintf("complaint_%d", r.seq)
	r.complaints[copy.ID] = cloneComplaint(copy)
	return copy, nil
}

func (r *stubComplaintRepo) FindByID(_ context.Context, id string) (*domain.Complaint, error) {
	if c, ok := r.complaints[id]; ok {
		return cloneComplaint(c), nil
	}
	return nil, domain.ErrComplaintNotFound
}

func (r *stubComplaintRepo) FindByUser(_ context.Context, userID string) ([]*domain.Complaint, error) {
	var out []*domain.Complaint
	for _, c := range r.complaints {
		if c.UserID == userID {
			out = append(out, cloneComplaint(c))
		}
	}
	return out, nil
}

func (r *stubComplaintRepo) FindByAreaOrAssignee(_ context.Context, area, cleanerID string) ([]*domain.Complaint, error) {
	var out []*domain.Complaint
	for _, c := range r.complaints {
		if c.Area == area || c.AssignedCleaner == cleanerID {
			out = append(out, cloneComplaint(c))
		}
	}
	return out, nil
}

func (r *stubComplaintRepo) FindAll(_ context.Context) ([]*domain.Complaint, error) {
	var out []*domain.Complaint
	for _, c := range r.complaints {
		out = append(out, cloneComplaint(c))
	}
	return out, nil
}

func (r *stubComplaintRepo) Assign(_ context.Context, id string, update ports.AssignmentUpdate) (*domain.Complaint, error) {
	c, ok := r.complaints[id]
	if !ok {
		return nil, domain.ErrComplaintNotFound
	}
	c.AssignedCleaner = update.CleanerID
	c.CleanerName = update.CleanerName
	c.CleanerPhone = update.CleanerPhone
	c.ExpectedArrival = update.ExpectedArrival
	c.Status = domain.ComplaintAssigned
	return cloneComplaint(c), nil
}

func (r *stubComplaintRepo) UpdateStatus(_ context.Context, id string, status domain.ComplaintStatus, collectionDate *time.Time) (*domain.Complaint, error) {
	c, ok := r.complaints[id]
	if !ok {
		return nil, domain.ErrComplaintNotFound
	}
	c.Status = status
	c.CollectionDate = collectionDate
	return cloneComplaint(c), nil
}

func (r *stubComplaintRepo) CountByStatus(_ context.Context) (map[domain.ComplaintStatus]int64, error) {
	counts := make(map[domain.ComplaintStatus]int64)
	for _, c := range r.complaints {
		counts[c.Status]++
	}
	return counts, nil
}

type stubRouteRepo struct {
	routes map[string]*domain.Route
	seq    int
}

func newStubRouteRepo() *stubRouteRepo {
	return &stubRouteRepo{routes: make(map[string]*domain.Route)}
}

func cloneRoute(r *domain.Route) *domain.Route {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func (r *stubRouteRepo) Create(_ context.Context, route *domain.Route) (*domain.Route, error) {
	r.seq++
	copy := cloneRoute(route)
	copy.ID = fmt.Sprintf("route_%d", r.seq)
	r.routes[copy.ID] = cloneRoute(copy)
	return copy, nil
}

func (r *stubRouteRepo) FindByID(_ context.Context, id string) (*domain.Route, error) {
	if rt, ok := r.routes[id]; ok {
		return cloneRoute(rt), nil
	}
	return nil, domain.ErrRouteNotFound
}

func (r *stubRouteRepo) FindByCleaner(_ context.Context, cleanerID string) ([]*domain.Route, error) {
	var out []*domain.Route
	for _, rt := range r.routes {
		if rt.CleanerID == cleanerID {
			out = append(out, cloneRoute(rt))
		}
	}
	return out, nil
}

func (r *stubRouteRepo) FindAll(_ context.Context) ([]*domain.Route, error) {
	var out []*domain.Route
	for _, rt := range r.routes {
		out = append(out, cloneRoute(rt))
	}
	return out, nil
}

func (r *stubRouteRepo) UpdateStatus(_ context.Context, id string, status domain.RouteStatus) (*domain.Route, error) {
	rt, ok := r.routes[id]
	if !ok {
		return nil, domain.ErrRouteNotFound
	}
	rt.Status = status
	return cloneRoute(rt), nil
}

func (r *stubRouteRepo) Delete(_ context.Context, id string) error {
	delete(r.routes, id)
	return nil
}

type stubLocationCache struct {
	published []ports.LocationSnapshot
	failWith  error
}

func (c *stubLocationCache) Publish(_ context.Context, snap ports.LocationSnapshot) error {
	if c.failWith != nil {
		return c.failWith
	}
	c.published = append(c.published, snap)
	return nil
}

func (c *stubLocationCache) Lookup(_ context.Context, cleanerID string) (*ports.LocationSnapshot, error) {
	if c.failWith != nil {
		return nil, c.failWith
	}
	for i := len(c.published) - 1; i >= 0; i-- {
		if c.published[i].CleanerID == cleanerID {
			snap := c.published[i]
			return &snap, nil
		}
	}
	return nil, nil
}
