package testutil

import (
	"context"

	"github.com/arthur-debert/savecrypt/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockNotifier implements types.Notifier for testing
type MockNotifier struct {
	mock.Mock
}

var _ types.Notifier = (*MockNotifier)(nil)

// NewMockNotifier returns a MockNotifier that accepts any Progress call, since
// progress lines are cosmetic in most tests.
func NewMockNotifier() *MockNotifier {
	m := &MockNotifier{}
	m.On("Progress", mock.Anything).Maybe()
	return m
}

func (m *MockNotifier) Info(title, message string) error {
	args := m.Called(title, message)
	return args.Error(0)
}

func (m *MockNotifier) Error(title, message string) error {
	args := m.Called(title, message)
	return args.Error(0)
}

func (m *MockNotifier) Progress(message string) {
	m.Called(message)
}

func (m *MockNotifier) ChooseConflictDisposition(fileName string) (types.ConflictDecision, error) {
	args := m.Called(fileName)
	return args.Get(0).(types.ConflictDecision), args.Error(1)
}

// MockEngine implements types.Engine for testing
type MockEngine struct {
	mock.Mock
}

var _ types.Engine = (*MockEngine)(nil)

func (m *MockEngine) Transform(ctx context.Context, job types.ConversionJob) types.ProcessOutcome {
	args := m.Called(ctx, job)
	return args.Get(0).(types.ProcessOutcome)
}

// Succeeded is a ProcessOutcome for a zero exit status
func Succeeded() types.ProcessOutcome {
	return types.ProcessOutcome{Launched: true, Succeeded: true}
}

// Failed is a ProcessOutcome for a non-zero exit status with stderr text
func Failed(stderr string) types.ProcessOutcome {
	return types.ProcessOutcome{Launched: true, DiagnosticText: stderr}
}
