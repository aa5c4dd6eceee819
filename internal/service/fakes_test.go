package service

import (
	"errors"
	"sync"
	"time"

	"go-sales-dashboard/internal/model"

	"gorm.io/gorm"
)

var wib = time.FixedZone("WIB", 7*3600)

// fixedClock is 2024-05-10 09:00 WIB (a Friday)
func fixedClock() Clock {
	return Clock{
		Location: wib,
		Now:      func() time.Time { return time.Date(2024, 5, 10, 2, 0, 0, 0, time.UTC) },
	}
}

type fakeUserRepo struct {
	users     map[uint]*model.User
	nextID    uint
	failWith  error
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*model.User{}, nextID: 1}
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []model.User
	for id := uint(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID uint, hashedPassword string) error {
	u, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Password = hashedPassword
	return nil
}

type fakeProductRepo struct {
	counts map[string]int64
	err    error
}

func (r *fakeProductRepo) CountByDate(date string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.counts[date], nil
}

type fakeTxRepo struct {
	counts   map[string]int64
	snapshot *model.SalesSnapshot
	flow     []model.StockFlowPoint
	err      error

	snapshotCalls int
	lastDate      string
	lastFrom      string
	lastTo        string
}

func (r *fakeTxRepo) CountByDate(date string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.counts[date], nil
}

func (r *fakeTxRepo) GetSalesSnapshot(date, from string) (*model.SalesSnapshot, error) {
	r.snapshotCalls++
	r.lastDate, r.lastFrom = date, from
	if r.err != nil {
		return nil, r.err
	}
	if r.snapshot == nil {
		return &model.SalesSnapshot{}, nil
	}
	cp := *r.snapshot
	return &cp, nil
}

func (r *fakeTxRepo) GetStockFlow(from, to string) ([]model.StockFlowPoint, error) {
	r.lastFrom, r.lastTo = from, to
	if r.err != nil {
		return nil, r.err
	}
	return r.flow, nil
}

type fakeTokens struct {
	err error
}

func (f fakeTokens) GenerateToken(userID uint, email, name string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + email, nil
}

type published struct {
	eventType string
	key       string
	payload   any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) Publish(eventType, key string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{eventType, key, payload})
}

func (p *recordingPublisher) all() []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]published(nil), p.events...)
}

// mapCache stores values as-is, keyed by string
type mapCache struct {
	data map[string]*model.DailySummary
	sets int
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string]*model.DailySummary{}}
}

func (c *mapCache) Get(key string, dst any) bool {
	v, ok := c.data[key]
	if !ok {
		return false
	}
	out, ok := dst.(*model.DailySummary)
	if !ok {
		return false
	}
	*out = *v
	return true
}

func (c *mapCache) Set(key string, value any) {
	c.sets++
	if v, ok := value.(*model.DailySummary); ok {
		cp := *v
		c.data[key] = &cp
	}
}

var errStore = errors.New("connection refused")
