package service

import (
	"context"
	"sync"
	"time"

	"reminder-notifier/internal/domain/entity"
	appErrors "reminder-notifier/internal/pkg/errors"
)

// reminderRepoFake is a hand-written ReminderRepository; unset Func fields fall back to
// zero results.
type reminderRepoFake struct {
	FindDueFunc             func(ctx context.Context, now time.Time) ([]*entity.Reminder, error)
	MarkSentFunc            func(ctx context.Context, id, ownerID string) error
	FindByIDFunc            func(ctx context.Context, ownerID, id string) (*entity.Reminder, error)
	FindUpcomingByOwnerFunc func(ctx context.Context, ownerID string, now time.Time) ([]*entity.Reminder, error)
	CreateFunc              func(ctx context.Context, reminder *entity.Reminder) error
	DeleteFunc              func(ctx context.Context, ownerID, id string) error

	mu            sync.Mutex
	markSentCalls []string
	created       []*entity.Reminder
}

func (f *reminderRepoFake) FindDue(ctx context.Context, now time.Time) ([]*entity.Reminder, error) {
	if f.FindDueFunc == nil {
		return nil, nil
	}
	return f.FindDueFunc(ctx, now)
}

func (f *reminderRepoFake) MarkSent(ctx context.Context, id, ownerID string) error {
	f.mu.Lock()
	f.markSentCalls = append(f.markSentCalls, ownerID+"/"+id)
	f.mu.Unlock()
	if f.MarkSentFunc == nil {
		return nil
	}
	return f.MarkSentFunc(ctx, id, ownerID)
}

func (f *reminderRepoFake) FindByID(ctx context.Context, ownerID, id string) (*entity.Reminder, error) {
	if f.FindByIDFunc == nil {
		return nil, appErrors.ErrReminderNotFound
	}
	return f.FindByIDFunc(ctx, ownerID, id)
}

func (f *reminderRepoFake) FindUpcomingByOwner(ctx context.Context, ownerID string, now time.Time) ([]*entity.Reminder, error) {
	if f.FindUpcomingByOwnerFunc == nil {
		return nil, nil
	}
	return f.FindUpcomingByOwnerFunc(ctx, ownerID, now)
}

func (f *reminderRepoFake) Create(ctx context.Context, reminder *entity.Reminder) error {
	f.mu.Lock()
	f.created = append(f.created, reminder)
	f.mu.Unlock()
	if f.CreateFunc == nil {
		return nil
	}
	return f.CreateFunc(ctx, reminder)
}

func (f *reminderRepoFake) Delete(ctx context.Context, ownerID, id string) error {
	if f.DeleteFunc == nil {
		return nil
	}
	return f.DeleteFunc(ctx, ownerID, id)
}

func (f *reminderRepoFake) MarkSentCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.markSentCalls...)
}

// userRepoFake is an in-memory UserRepository.
type userRepoFake struct {
	mu    sync.Mutex
	users map[string]entity.User
	err   error
}

func (f *userRepoFake) FindByUserID(_ context.Context, userID string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[userID]
	if !ok {
		return nil, appErrors.ErrUserNotFound
	}
	return &u, nil
}

func (f *userRepoFake) Save(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.users == nil {
		f.users = map[string]entity.User{}
	}
	f.users[user.ID] = *user
	return nil
}

func (f *userRepoFake) Delete(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, userID)
	return f.err
}

// channelFake records every notification it is asked to send.
type channelFake struct {
	SendFunc func(ctx context.Context, n entity.Notification) error

	mu   sync.Mutex
	sent []entity.Notification
}

func (c *channelFake) Send(ctx context.Context, n entity.Notification) error {
	if c.SendFunc != nil {
		if err := c.SendFunc(ctx, n); err != nil {
			return err
		}
	}
	c.mu.Lock()
	c.sent = append(c.sent, n)
	c.mu.Unlock()
	return nil
}

func (c *channelFake) Name() string { return "fake" }

func (c *channelFake) Sent() []entity.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Notification(nil), c.sent...)
}
