// Package mocks contains simple hand-written test doubles for the service
// ports. These are lightweight and suitable for unit tests without codegen.
package mocks

import (
	"context"
	"sync"

	"github.com/fitpulse/studio-ui/internal/domain/auth"
	"github.com/fitpulse/studio-ui/internal/domain/model"
	apperrors "github.com/fitpulse/studio-ui/internal/errors"
	"github.com/fitpulse/studio-ui/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.SessionStore = (*MemorySessionStore)(nil)
	_ ports.StudioAPI    = (*FakeStudioAPI)(nil)
)

// MemorySessionStore is an in-memory SessionStore safe for concurrent use.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]auth.Session

	// SaveErr, when set, is returned by every Save call.
	SaveErr error
}

// NewMemorySessionStore creates an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: map[string]auth.Session{}}
}

func (m *MemorySessionStore) Save(_ context.Context, sid string, sess auth.Session) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sid] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, sid string) (auth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sid]
	if !ok {
		return auth.Session{}, apperrors.SessionRestore("session not found")
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sid)
	return nil
}

// Len returns the number of stored sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// FakeStudioAPI is a func-field double for the remote scheduling platform.
// Unset funcs return zero values; Calls counts invocations per method name
// so tests can assert a call never left the process.
type FakeStudioAPI struct {
	mu    sync.Mutex
	calls map[string]int

	LoginFunc                func(ctx context.Context, email, password string) (auth.Session, error)
	LogoutFunc               func(ctx context.Context, token string) error
	ListUsersFunc            func(ctx context.Context, token string) ([]model.User, error)
	CreateUserFunc           func(ctx context.Context, token string, in ports.CreateUserInput) (model.User, error)
	DeleteUserFunc           func(ctx context.Context, token string, id int) error
	ListClientsFunc          func(ctx context.Context, token string) ([]model.Client, error)
	DeleteClientFunc         func(ctx context.Context, token string, id int) error
	ListTrainingsFunc        func(ctx context.Context, token string, f ports.TrainingFilter) ([]model.Training, error)
	CreateTrainingFunc       func(ctx context.Context, token string, in ports.CreateTrainingInput) (model.Training, error)
	UpdateTrainingStatusFunc func(ctx context.Context, token string, id int, status model.TrainingStatus) error
	DeleteTrainingFunc       func(ctx context.Context, token string, id int) error
	RegisterFunc             func(ctx context.Context, token string, trainingID, participantID int) error
	CancelRegistrationFunc   func(ctx context.Context, token string, trainingID int) error
	ListSubscriptionsFunc    func(ctx context.Context, token string) ([]model.Subscription, error)
	CreateSubscriptionFunc   func(ctx context.Context, token string, in ports.CreateSubscriptionInput) (model.Subscription, error)
	DeleteSubscriptionFunc   func(ctx context.Context, token string, id int) error
	ListEmployeesFunc        func(ctx context.Context, token string) ([]model.Employee, error)
}

// NewFakeStudioAPI creates a fake with zeroed call counters.
func NewFakeStudioAPI() *FakeStudioAPI {
	return &FakeStudioAPI{calls: map[string]int{}}
}

// Calls returns how many times the named method was invoked.
func (f *FakeStudioAPI) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *FakeStudioAPI) record(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[method]++
}

func (f *FakeStudioAPI) Login(ctx context.Context, email, password string) (auth.Session, error) {
	f.record("Login")
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, email, password)
	}
	return auth.Session{}, nil
}

func (f *FakeStudioAPI) Logout(ctx context.Context, token string) error {
	f.record("Logout")
	if f.LogoutFunc != nil {
		return f.LogoutFunc(ctx, token)
	}
	return nil
}

func (f *FakeStudioAPI) ListUsers(ctx context.Context, token string) ([]model.User, error) {
	f.record("ListUsers")
	if f.ListUsersFunc != nil {
		return f.ListUsersFunc(ctx, token)
	}
	return nil, nil
}

func (f *FakeStudioAPI) CreateUser(ctx context.Context, token string, in ports.CreateUserInput) (model.User, error) {
	f.record("CreateUser")
	if f.CreateUserFunc != nil {
		return f.CreateUserFunc(ctx, token, in)
	}
	return model.User{}, nil
}

func (f *FakeStudioAPI) DeleteUser(ctx context.Context, token string, id int) error {
	f.record("DeleteUser")
	if f.DeleteUserFunc != nil {
		return f.DeleteUserFunc(ctx, token, id)
	}
	return nil
}

func (f *FakeStudioAPI) ListClients(ctx context.Context, token string) ([]model.Client, error) {
	f.record("ListClients")
	if f.ListClientsFunc != nil {
		return f.ListClientsFunc(ctx, token)
	}
	return nil, nil
}

func (f *FakeStudioAPI) DeleteClient(ctx context.Context, token string, id int) error {
	f.record("DeleteClient")
	if f.DeleteClientFunc != nil {
		return f.DeleteClientFunc(ctx, token, id)
	}
	return nil
}

func (f *FakeStudioAPI) ListTrainings(ctx context.Context, token string, filter ports.TrainingFilter) ([]model.Training, error) {
	f.record("ListTrainings")
	if f.ListTrainingsFunc != nil {
		return f.ListTrainingsFunc(ctx, token, filter)
	}
	return nil, nil
}

func (f *FakeStudioAPI) CreateTraining(ctx context.Context, token string, in ports.CreateTrainingInput) (model.Training, error) {
	f.record("CreateTraining")
	if f.CreateTrainingFunc != nil {
		return f.CreateTrainingFunc(ctx, token, in)
	}
	return model.Training{}, nil
}

func (f *FakeStudioAPI) UpdateTrainingStatus(ctx context.Context, token string, id int, status model.TrainingStatus) error {
	f.record("UpdateTrainingStatus")
	if f.UpdateTrainingStatusFunc != nil {
		return f.UpdateTrainingStatusFunc(ctx, token, id, status)
	}
	return nil
}

func (f *FakeStudioAPI) DeleteTraining(ctx context.Context, token string, id int) error {
	f.record("DeleteTraining")
	if f.DeleteTrainingFunc != nil {
		return f.DeleteTrainingFunc(ctx, token, id)
	}
	return nil
}

func (f *FakeStudioAPI) RegisterForTraining(ctx context.Context, token string, trainingID, participantID int) error {
	f.record("RegisterForTraining")
	if f.RegisterFunc != nil {
		return f.RegisterFunc(ctx, token, trainingID, participantID)
	}
	return nil
}

func (f *FakeStudioAPI) CancelRegistration(ctx context.Context, token string, trainingID int) error {
	f.record("CancelRegistration")
	if f.CancelRegistrationFunc != nil {
		return f.CancelRegistrationFunc(ctx, token, trainingID)
	}
	return nil
}

func (f *FakeStudioAPI) ListSubscriptions(ctx context.Context, token string) ([]model.Subscription, error) {
	f.record("ListSubscriptions")
	if f.ListSubscriptionsFunc != nil {
		return f.ListSubscriptionsFunc(ctx, token)
	}
	return nil, nil
}

func (f *FakeStudioAPI) CreateSubscription(ctx context.Context, token string, in ports.CreateSubscriptionInput) (model.Subscription, error) {
	f.record("CreateSubscription")
	if f.CreateSubscriptionFunc != nil {
		return f.CreateSubscriptionFunc(ctx, token, in)
	}
	return model.Subscription{}, nil
}

func (f *FakeStudioAPI) DeleteSubscription(ctx context.Context, token string, id int) error {
	f.record("DeleteSubscription")
	if f.DeleteSubscriptionFunc != nil {
		return f.DeleteSubscriptionFunc(ctx, token, id)
	}
	return nil
}

func (f *FakeStudioAPI) ListEmployees(ctx context.Context, token string) ([]model.Employee, error) {
	f.record("ListEmployees")
	if f.ListEmployeesFunc != nil {
		return f.ListEmployeesFunc(ctx, token)
	}
	return nil, nil
}
