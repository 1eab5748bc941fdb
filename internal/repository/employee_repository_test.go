package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/employee_roster/internal/domain"
)

func emp(id int, name, designation string, salary float64) domain.Employee {
	return domain.Employee{
		ID:            id,
		Name:          name,
		Designation:   designation,
		Salary:        salary,
		MaritalStatus: domain.MaritalStatusSingle,
	}
}

func salaries(list []domain.Employee) []float64 {
	out := make([]float64, len(list))
	for i, e := range list {
		out[i] = e.Salary
	}
	return out
}

func names(list []domain.Employee) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Name
	}
	return out
}

func TestEmployeeRepository_AddAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	in := emp(1, "A", "Developer", 1000)
	in.NIC = "123"
	in.JoiningDate = "2020-01-15"
	repo.Add(ctx, in)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, in, got)
	assert.False(t, got.IsExited())

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeRepository_AddClearsExitDate(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	date := "2024-01-01"
	in := emp(1, "A", "HR", 10)
	in.ExitDate = &date
	repo.Add(ctx, in)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got.ExitDate)
}

func TestEmployeeRepository_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	assert.Empty(t, repo.List(ctx))

	repo.Add(ctx, emp(3, "C", "HR", 1))
	repo.Add(ctx, emp(1, "A", "HR", 1))
	repo.Add(ctx, emp(2, "B", "HR", 1))

	assert.Equal(t, []string{"C", "A", "B"}, names(repo.List(ctx)))
}

func TestEmployeeRepository_SnapshotsAreDetached(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()
	repo.Add(ctx, emp(1, "A", "Developer", 1000))
	repo.Add(ctx, emp(2, "B", "Developer", 2000))

	list := repo.List(ctx)
	list[0].Salary = 1
	list[1].Name = "changed"

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got.Salary)
	assert.Equal(t, []string{"A", "B"}, names(repo.List(ctx)))

	_, err = repo.Exit(ctx, 2, "2024-05-01")
	require.NoError(t, err)
	exited := repo.ListExited(ctx)
	*exited[0].ExitDate = "1999-01-01"
	assert.Equal(t, "2024-05-01", *repo.ListExited(ctx)[0].ExitDate)
}

func TestEmployeeRepository_Update(t *testing.T) {
	ctx := context.Background()
	salary := func(v float64) *float64 { return &v }
	designation := func(v string) *string { return &v }

	tests := []struct {
		name       string
		req        domain.UpdateRequest
		wantSalary float64
		wantDesig  string
	}{
		{name: "nothing", req: domain.UpdateRequest{}, wantSalary: 1000, wantDesig: "Developer"},
		{name: "salary only", req: domain.UpdateRequest{Salary: salary(1500)}, wantSalary: 1500, wantDesig: "Developer"},
		{name: "designation only", req: domain.UpdateRequest{Designation: designation("Manager")}, wantSalary: 1000, wantDesig: "Manager"},
		{name: "explicit zero salary", req: domain.UpdateRequest{Salary: salary(0)}, wantSalary: 0, wantDesig: "Developer"},
		{name: "both", req: domain.UpdateRequest{Salary: salary(2000), Designation: designation("HR")}, wantSalary: 2000, wantDesig: "HR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewEmployeeRepository()
			repo.Add(ctx, emp(1, "A", "Developer", 1000))

			got, err := repo.Update(ctx, 1, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSalary, got.Salary)
			assert.Equal(t, tt.wantDesig, got.Designation)

			stored, err := repo.GetByID(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, got, stored)
		})
	}

	t.Run("not found", func(t *testing.T) {
		repo := NewEmployeeRepository()
		_, err := repo.Update(ctx, 7, domain.UpdateRequest{Salary: salary(1)})
		assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	})
}

func TestEmployeeRepository_UpdateTouchesFirstMatchOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()
	repo.Add(ctx, emp(5, "first", "HR", 100))
	repo.Add(ctx, emp(5, "second", "HR", 100))

	s := 300.0
	_, err := repo.Update(ctx, 5, domain.UpdateRequest{Salary: &s})
	require.NoError(t, err)

	assert.Equal(t, []float64{300, 100}, salaries(repo.List(ctx)))
}

func TestEmployeeRepository_DeleteRemovesAllMatches(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()
	repo.Add(ctx, emp(1, "A", "HR", 1))
	repo.Add(ctx, emp(2, "B", "HR", 1))
	repo.Add(ctx, emp(2, "B2", "HR", 1))
	repo.Add(ctx, emp(3, "C", "HR", 1))

	assert.Equal(t, 2, repo.Delete(ctx, 2))
	assert.Equal(t, []string{"A", "C"}, names(repo.List(ctx)))

	_, err := repo.GetByID(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	assert.Equal(t, 0, repo.Delete(ctx, 42))
	assert.Len(t, repo.List(ctx), 2)
}

func TestEmployeeRepository_Promote(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()
	repo.Add(ctx, emp(1, "A", "Developer", 1000))

	got, err := repo.Promote(ctx, 1, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1100, got, 1e-9)

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1100, stored.Salary, 1e-9)

	got, err = repo.Promote(ctx, 1, -50)
	require.NoError(t, err)
	assert.InDelta(t, 550, got, 1e-9)

	_, err = repo.Promote(ctx, 2, 10)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeRepository_PromoteZeroSalary(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()
	repo.Add(ctx, emp(1, "A", "Developer", 0))

	got, err := repo.Promote(ctx, 1, 25)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestEmployeeRepository_Exit(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()
	repo.Add(ctx, emp(1, "A", "Developer", 1000))
	repo.Add(ctx, emp(2, "B", "HR", 500))

	got, err := repo.Exit(ctx, 1, "2024-03-31")
	require.NoError(t, err)
	require.NotNil(t, got.ExitDate)
	assert.Equal(t, "2024-03-31", *got.ExitDate)
	assert.True(t, got.IsExited())

	assert.Equal(t, []string{"B"}, names(repo.List(ctx)))
	exited := repo.ListExited(ctx)
	require.Len(t, exited, 1)
	assert.Equal(t, "A", exited[0].Name)
	assert.Equal(t, "2024-03-31", *exited[0].ExitDate)

	_, err = repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	_, err = repo.Promote(ctx, 1, 10)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	_, err = repo.Exit(ctx, 1, "2024-04-01")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	assert.Len(t, repo.ListExited(ctx), 1)
}

func TestEmployeeRepository_ExitWithDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()
	repo.Add(ctx, emp(4, "first", "HR", 1))
	repo.Add(ctx, emp(4, "second", "HR", 2))
	repo.Add(ctx, emp(5, "other", "HR", 3))

	_, err := repo.Exit(ctx, 4, "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, []string{"other"}, names(repo.List(ctx)))
	assert.Equal(t, []string{"first"}, names(repo.ListExited(ctx)))
}

func TestEmployeeRepository_FilterByDesignation(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()
	repo.Add(ctx, emp(1, "A", "Developer", 1))
	repo.Add(ctx, emp(2, "B", "developer", 1))
	repo.Add(ctx, emp(3, "C", "Senior Developer", 1))
	repo.Add(ctx, emp(4, "D", "Developer", 1))

	assert.Equal(t, []string{"A", "D"}, names(repo.FilterByDesignation(ctx, "Developer")))
	assert.Empty(t, repo.FilterByDesignation(ctx, "Manager"))
}

func TestEmployeeRepository_SortBySalary(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()
	repo.Add(ctx, emp(1, "A", "HR", 500))
	repo.Add(ctx, emp(2, "B", "HR", 1500))
	repo.Add(ctx, emp(3, "C", "HR", 1000))

	assert.Equal(t, []float64{500, 1000, 1500}, salaries(repo.SortBySalary(ctx, false)))
	assert.Equal(t, []float64{1500, 1000, 500}, salaries(repo.SortBySalary(ctx, true)))

	// the stored order is untouched
	assert.Equal(t, []string{"A", "B", "C"}, names(repo.List(ctx)))
}

func TestEmployeeRepository_SortBySalaryIsStable(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()
	repo.Add(ctx, emp(1, "first", "HR", 700))
	repo.Add(ctx, emp(2, "low", "HR", 100))
	repo.Add(ctx, emp(3, "second", "HR", 700))

	assert.Equal(t, []string{"low", "first", "second"}, names(repo.SortBySalary(ctx, false)))
	assert.Equal(t, []string{"first", "second", "low"}, names(repo.SortBySalary(ctx, true)))
}

func TestEmployeeRepository_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			repo.Add(ctx, emp(id, "x", "HR", float64(id)))
			_ = repo.List(ctx)
			_, _ = repo.Promote(ctx, id, 10)
			_ = repo.SortBySalary(ctx, true)
		}(i)
	}
	wg.Wait()

	assert.Len(t, repo.List(ctx), 50)
}
