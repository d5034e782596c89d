package get_compatible_chairs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeChairRepo struct {
	chairs []*domain.Chair
	err    error
}

func (f *fakeChairRepo) List(ctx context.Context, onlyActive bool) ([]*domain.Chair, error) {
	return f.chairs, f.err
}

func TestExecute_FiltersBySupportedServices(t *testing.T) {
	repo := &fakeChairRepo{chairs: []*domain.Chair{
		{ID: 1, Name: "Кресло 1", Active: true, SupportedServiceIDs: []int64{1, 2, 3}},
		{ID: 2, Name: "Кресло 2", Active: true, SupportedServiceIDs: []int64{1}},
		{ID: 3, Name: "Кресло 3", Active: true, SupportedServiceIDs: []int64{2, 3}},
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceIDs: []int64{2, 3}})
	require.NoError(t, err)
	require.Len(t, resp.Chairs, 2)
	assert.Equal(t, int64(1), resp.Chairs[0].ID)
	assert.Equal(t, int64(3), resp.Chairs[1].ID)
}

func TestExecute_EmptyServiceListReturnsAllActive(t *testing.T) {
	repo := &fakeChairRepo{chairs: []*domain.Chair{
		{ID: 1, Active: true, SupportedServiceIDs: []int64{1}},
		{ID: 2, Active: true, SupportedServiceIDs: nil},
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Len(t, resp.Chairs, 2)
}

func TestExecute_NoCompatibleChairsIsEmptySuccess(t *testing.T) {
	repo := &fakeChairRepo{chairs: []*domain.Chair{
		{ID: 1, Active: true, SupportedServiceIDs: []int64{1}},
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceIDs: []int64{9}})
	require.NoError(t, err)
	assert.Empty(t, resp.Chairs)
}

func TestExecute_InvalidServiceID(t *testing.T) {
	uc := NewUseCase(&fakeChairRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceIDs: []int64{-1}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
