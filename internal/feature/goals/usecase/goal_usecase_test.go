package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel_journal/internal/feature/goals/domain/entity"
	"travel_journal/internal/shared/apperr"
)

// mockGoalRepository is a function-field GoalRepository.
type mockGoalRepository struct {
	CreateFunc     func(ctx context.Context, g *entity.Goal) error
	ListByUserFunc func(ctx context.Context, userID uint) ([]entity.Goal, error)
	UpdateFunc     func(ctx context.Context, g *entity.Goal) error
	DeleteFunc     func(ctx context.Context, id uint) error
}

func (m *mockGoalRepository) Create(ctx context.Context, g *entity.Goal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, g)
	}
	g.ID = 1
	return nil
}

func (m *mockGoalRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Goal, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockGoalRepository) Update(ctx context.Context, g *entity.Goal) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, g)
	}
	return nil
}

func (m *mockGoalRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func TestGoalUsecase_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         GoalInput
		repoErr    error
		wantErr    bool
		wantKind   apperr.Kind
		wantFields []string
		wantDate   string
	}{
		{name: "with target date", in: GoalInput{UserID: 1, Title: "Kyoto", TargetDate: "2026-04-01"}, wantDate: "2026-04-01"},
		{name: "timestamp target date", in: GoalInput{UserID: 1, Title: "Kyoto", TargetDate: "2026-04-01T00:00:00.000Z"}, wantDate: "2026-04-01"},
		{name: "without target date", in: GoalInput{UserID: 1, Title: "Kyoto"}},
		{name: "missing user and title", in: GoalInput{Title: "  "}, wantErr: true, wantKind: apperr.KindValidation, wantFields: []string{"userID", "title"}},
		{name: "bad date", in: GoalInput{UserID: 1, Title: "Kyoto", TargetDate: "April"}, wantErr: true, wantKind: apperr.KindValidation, wantFields: []string{"target_date"}},
		{name: "store failure", in: GoalInput{UserID: 1, Title: "Kyoto"}, repoErr: errors.New("boom"), wantErr: true, wantKind: apperr.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			repo := &mockGoalRepository{CreateFunc: func(_ context.Context, g *entity.Goal) error {
				called = true
				g.ID = 9
				return tt.repoErr
			}}
			g, err := NewGoalUsecase(repo).Create(context.Background(), tt.in)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				if tt.wantFields != nil {
					e, _ := apperr.As(err)
					assert.Equal(t, tt.wantFields, e.Fields)
					assert.False(t, called, "store must not be touched on invalid input")
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint(9), g.ID)
			if tt.wantDate == "" {
				assert.Nil(t, g.TargetDate)
			} else {
				require.NotNil(t, g.TargetDate)
				assert.Equal(t, tt.wantDate, g.TargetDate.Format(DateLayout))
			}
		})
	}
}

func TestGoalUsecase_ListByUser(t *testing.T) {
	t.Parallel()

	_, err := NewGoalUsecase(&mockGoalRepository{}).ListByUser(context.Background(), 0)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	repo := &mockGoalRepository{ListByUserFunc: func(_ context.Context, id uint) ([]entity.Goal, error) {
		return []entity.Goal{{ID: 1, UserID: id}}, nil
	}}
	goals, err := NewGoalUsecase(repo).ListByUser(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, uint(3), goals[0].UserID)
}

func TestGoalUsecase_UpdateDelete(t *testing.T) {
	t.Parallel()

	missing := &mockGoalRepository{
		UpdateFunc: func(context.Context, *entity.Goal) error { return ErrGoalNotFound },
		DeleteFunc: func(context.Context, uint) error { return ErrGoalNotFound },
	}
	uc := NewGoalUsecase(missing)

	_, err := uc.Update(context.Background(), 5, GoalInput{Title: "x"})
	assert.ErrorIs(t, err, ErrGoalNotFound)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	err = uc.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	_, err = uc.Update(context.Background(), 5, GoalInput{})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	broken := &mockGoalRepository{DeleteFunc: func(context.Context, uint) error { return errors.New("boom") }}
	err = NewGoalUsecase(broken).Delete(context.Background(), 5)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	assert.NotErrorIs(t, err, ErrGoalNotFound)
}
