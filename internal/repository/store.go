package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/kaitozaw/tennislot/internal/model"
)

// Store bundles the per-table repositories over one database handle
// and adapts them to the wizard's persistence port, so the wizard
// package stays free of SQL and handler code wires a single value.
type Store struct {
	PageRepo      *BookingPageRepo
	CourtRepo     *CourtRepo
	SlotRepo      *SlotDefinitionRepo
	EquipmentRepo *EquipmentOptionRepo
	RuleRepo      *OpeningHourRuleRepo
	HolidayRepo   *HolidayExceptionRepo
	SpecialRepo   *SpecialExceptionRepo
	BookingRepo   *BookingRepo
	OrganiserRepo *OrganiserRepo
	TokenRepo     *TokenRepo
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		PageRepo:      NewBookingPageRepo(db),
		CourtRepo:     NewCourtRepo(db),
		SlotRepo:      NewSlotDefinitionRepo(db),
		EquipmentRepo: NewEquipmentOptionRepo(db),
		RuleRepo:      NewOpeningHourRuleRepo(db),
		HolidayRepo:   NewHolidayExceptionRepo(db),
		SpecialRepo:   NewSpecialExceptionRepo(db),
		BookingRepo:   NewBookingRepo(db),
		OrganiserRepo: NewOrganiserRepo(db),
		TokenRepo:     NewTokenRepo(db),
	}
}

// wizard.EntityStore implementation, by delegation.

func (s *Store) Page(ctx context.Context, pageID uint64) (*model.BookingPage, error) {
	return s.PageRepo.GetByID(ctx, pageID)
}

func (s *Store) UpdatePage(ctx context.Context, pageID uint64, name, location string) error {
	return s.PageRepo.UpdateInfo(ctx, pageID, name, location)
}

func (s *Store) SlotDefinition(ctx context.Context, pageID uint64) (*model.SlotDefinition, error) {
	return s.SlotRepo.GetByPage(ctx, pageID)
}

func (s *Store) SaveSlotDefinition(ctx context.Context, pageID uint64, slotSize int, price decimal.Decimal) error {
	return s.SlotRepo.Upsert(ctx, pageID, slotSize, price)
}

func (s *Store) OpeningHourRules(ctx context.Context, pageID uint64) ([]*model.OpeningHourRule, error) {
	return s.RuleRepo.ListByPage(ctx, pageID)
}

func (s *Store) UpsertOpeningHourRule(ctx context.Context, pageID uint64, weekday int, start, end string) error {
	return s.RuleRepo.Upsert(ctx, pageID, weekday, start, end)
}

func (s *Store) Courts(ctx context.Context, pageID uint64) ([]*model.Court, error) {
	return s.CourtRepo.ListByPage(ctx, pageID)
}

func (s *Store) CreateCourt(ctx context.Context, pageID uint64, name string) (*model.Court, error) {
	return s.CourtRepo.Create(ctx, pageID, name)
}

func (s *Store) DeleteCourt(ctx context.Context, pageID, courtID uint64) error {
	return s.CourtRepo.DeleteByIDAndPage(ctx, courtID, pageID)
}

func (s *Store) EquipmentOptions(ctx context.Context, pageID uint64) ([]*model.EquipmentOption, error) {
	return s.EquipmentRepo.ListByPage(ctx, pageID)
}

func (s *Store) CreateEquipmentOption(ctx context.Context, pageID uint64, name string, price decimal.Decimal) (*model.EquipmentOption, error) {
	return s.EquipmentRepo.Create(ctx, pageID, name, price)
}

func (s *Store) DeleteEquipmentOption(ctx context.Context, pageID, optionID uint64) error {
	return s.EquipmentRepo.DeleteByIDAndPage(ctx, optionID, pageID)
}

func (s *Store) HolidayExceptions(ctx context.Context, pageID uint64) ([]*model.HolidayException, error) {
	return s.HolidayRepo.ListByPage(ctx, pageID)
}

func (s *Store) CreateHolidayException(ctx context.Context, pageID uint64, date, start, end, note string) (*model.HolidayException, error) {
	return s.HolidayRepo.Create(ctx, pageID, date, start, end, note)
}

func (s *Store) DeleteHolidayException(ctx context.Context, pageID, exceptionID uint64) error {
	return s.HolidayRepo.DeleteByIDAndPage(ctx, exceptionID, pageID)
}

func (s *Store) SpecialExceptions(ctx context.Context, pageID uint64) ([]*model.SpecialException, error) {
	return s.SpecialRepo.ListByPage(ctx, pageID)
}

func (s *Store) CreateSpecialException(ctx context.Context, courtID uint64, date, start, end, note string) (*model.SpecialException, error) {
	return s.SpecialRepo.Create(ctx, courtID, date, start, end, note)
}

func (s *Store) DeleteSpecialException(ctx context.Context, pageID, exceptionID uint64) error {
	return s.SpecialRepo.DeleteByIDAndPage(ctx, exceptionID, pageID)
}
