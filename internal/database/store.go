package database

import (
	"context"
	"time"

	"caresync/internal/models"

	"gorm.io/gorm"
)

// GormStore exposes the read-only queries the reminder scheduler sweeps
// with. It satisfies scheduler.Store.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open GORM handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ActiveMedications returns all medications with the active flag set.
func (s *GormStore) ActiveMedications(ctx context.Context) ([]models.Medication, error) {
	var meds []models.Medication
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Find(&meds).Error
	return meds, err
}

// HasMedicationLog reports whether a log row exists for the medication
// with a scheduled time in [from, to).
func (s *GormStore) HasMedicationLog(ctx context.Context, medicationID string, from, to time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.MedicationLog{}).
		Where("medication_id = ? AND scheduled_time >= ? AND scheduled_time < ?", medicationID, from, to).
		Count(&count).Error
	return count > 0, err
}

// UpcomingAppointments returns reminder-eligible appointments starting in
// [from, to).
func (s *GormStore) UpcomingAppointments(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.WithContext(ctx).
		Where("start_time >= ? AND start_time < ? AND status IN ?", from, to, models.ReminderEligibleAppointmentStatuses).
		Find(&appts).Error
	return appts, err
}

// UpcomingShifts returns SCHEDULED shifts starting in [from, to).
func (s *GormStore) UpcomingShifts(ctx context.Context, from, to time.Time) ([]models.CaregiverShift, error) {
	var shifts []models.CaregiverShift
	err := s.db.WithContext(ctx).
		Where("start_time >= ? AND start_time < ? AND status = ?", from, to, models.ShiftScheduled).
		Find(&shifts).Error
	return shifts, err
}

// RefillCandidates returns active medications tracking supply that have
// fallen to or below their refill threshold.
func (s *GormStore) RefillCandidates(ctx context.Context) ([]models.Medication, error) {
	var meds []models.Medication
	err := s.db.WithContext(ctx).
		Where("active = ? AND current_supply IS NOT NULL AND refill_at IS NOT NULL AND current_supply <= refill_at", true).
		Find(&meds).Error
	return meds, err
}

// ActiveFamilyMemberIDs returns the user ids of active members of the care
// recipient's family.
func (s *GormStore) ActiveFamilyMemberIDs(ctx context.Context, careRecipientID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&models.FamilyMember{}).
		Joins(`JOIN care_recipient ON care_recipient.family_id = family_member.family_id`).
		Where("care_recipient.id = ? AND family_member.status = ?", careRecipientID, models.MemberActive).
		Pluck("family_member.user_id", &ids).Error
	return ids, err
}
