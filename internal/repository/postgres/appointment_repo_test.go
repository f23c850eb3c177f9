package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"designdesk/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var (
	apptStart = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	apptEnd   = time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)
	createdAt = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
)

func apptColumns() []string {
	return []string{"id", "title", "description", "category", "start_time", "end_time",
		"location", "customer_id", "assigned_staff_id", "created_by_staff_id", "status",
		"created_at", "updated_at"}
}

func TestAppointmentRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		appt    *domain.Appointment
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			appt: &domain.Appointment{
				Title:            "Consultation",
				Description:      "Initial consultation with the customer",
				Category:         domain.CategoryConsultation,
				Start:            apptStart,
				End:              apptEnd,
				Location:         "Showroom",
				CustomerID:       "cust-1",
				AssignedStaffID:  "staff-1",
				CreatedByStaffID: "staff-1",
				Status:           domain.StatusScheduled,
				CreatedAt:        createdAt,
				UpdatedAt:        createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO appointments`).
					WithArgs("Consultation", "Initial consultation with the customer",
						domain.CategoryConsultation, apptStart, apptEnd, "Showroom",
						sql.NullString{String: "cust-1", Valid: true}, "staff-1", "staff-1",
						domain.StatusScheduled, createdAt, createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ap-uuid-1"))
			},
			wantID: "ap-uuid-1",
		},
		{
			name: "db error",
			appt: &domain.Appointment{
				Title:    "Consultation",
				Category: domain.CategoryConsultation,
				Start:    apptStart,
				End:      apptEnd,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO appointments`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewAppointmentRepository(db)
			err = repo.Create(ctx, tt.appt)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.appt.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAppointmentRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Appointment
		wantErr error
	}{
		{
			name: "success",
			id:   "ap-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, category, start_time, end_time`).
					WithArgs("ap-1").
					WillReturnRows(sqlmock.NewRows(apptColumns()).
						AddRow("ap-1", "Consultation", "desc", "consultation", apptStart, apptEnd,
							"Showroom", "cust-1", "staff-1", "staff-1", "scheduled", createdAt, createdAt))
			},
			want: &domain.Appointment{
				ID:               "ap-1",
				Title:            "Consultation",
				Description:      "desc",
				Category:         domain.CategoryConsultation,
				Start:            apptStart,
				End:              apptEnd,
				Location:         "Showroom",
				CustomerID:       "cust-1",
				AssignedStaffID:  "staff-1",
				CreatedByStaffID: "staff-1",
				Status:           domain.StatusScheduled,
				CreatedAt:        createdAt,
				UpdatedAt:        createdAt,
			},
		},
		{
			name: "null customer id maps to empty string",
			id:   "ap-2",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, category, start_time, end_time`).
					WithArgs("ap-2").
					WillReturnRows(sqlmock.NewRows(apptColumns()).
						AddRow("ap-2", "Weekly sync", "", "internal_meeting", apptStart, apptEnd,
							"Office", nil, "staff-1", "staff-1", "scheduled", createdAt, createdAt))
			},
			want: &domain.Appointment{
				ID:               "ap-2",
				Title:            "Weekly sync",
				Category:         domain.CategoryInternalMeeting,
				Start:            apptStart,
				End:              apptEnd,
				Location:         "Office",
				AssignedStaffID:  "staff-1",
				CreatedByStaffID: "staff-1",
				Status:           domain.StatusScheduled,
				CreatedAt:        createdAt,
				UpdatedAt:        createdAt,
			},
		},
		{
			name: "not found",
			id:   "ap-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, category, start_time, end_time`).
					WithArgs("ap-missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewAppointmentRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAppointmentRepository_ListActiveByStaff(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, description, category, start_time, end_time`).
		WithArgs("staff-1", domain.StatusCancelled, from, to).
		WillReturnRows(sqlmock.NewRows(apptColumns()).
			AddRow("ap-1", "Consultation", "", "consultation", apptStart, apptEnd,
				"Showroom", "cust-1", "staff-1", "staff-1", "scheduled", createdAt, createdAt).
			AddRow("ap-2", "Site survey", "", "survey", apptEnd, apptEnd.Add(time.Hour),
				"12 Elm St", "cust-2", "staff-1", "staff-1", "confirmed", createdAt, createdAt))

	repo := NewAppointmentRepository(db)
	got, err := repo.ListActiveByStaff(ctx, "staff-1", from, to)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "ap-1", got[0].ID)
	require.Equal(t, domain.StatusConfirmed, got[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE appointments SET status`).
			WithArgs("ap-1", domain.StatusCancelled).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewAppointmentRepository(db)
		require.NoError(t, repo.SetStatus(ctx, "ap-1", domain.StatusCancelled))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE appointments SET status`).
			WithArgs("ap-missing", domain.StatusCancelled).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewAppointmentRepository(db)
		require.ErrorIs(t, repo.SetStatus(ctx, "ap-missing", domain.StatusCancelled), domain.ErrNotFound)
	})
}

func TestAppointmentRepository_SetStatuses(t *testing.T) {
	ctx := context.Background()

	t.Run("updates all ids", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE appointments SET status`).
			WithArgs(pq.Array([]string{"ap-1", "ap-2"}), domain.StatusCompleted).
			WillReturnResult(sqlmock.NewResult(0, 2))

		repo := NewAppointmentRepository(db)
		require.NoError(t, repo.SetStatuses(ctx, []string{"ap-1", "ap-2"}, domain.StatusCompleted))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty id list is a no-op", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewAppointmentRepository(db)
		require.NoError(t, repo.SetStatuses(ctx, nil, domain.StatusCompleted))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
