package commands

import (
	"context"

	"courtbook/internal/domain/facility"
	"courtbook/internal/domain/user"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotFacilityOwner = errs.New("facility belongs to another owner")

type UpsertCourtConfigRequest struct {
	FacilityID        uuid.UUID
	SportID           uuid.UUID
	CourtCount        int
	PricePerHourCents int64
}

type UpsertCourtConfigResult struct {
	CourtConfigID uuid.UUID
}

type CourtConfigCommands interface {
	// UpsertCourtConfig sets the court count and hourly price for a
	// (facility, sport) pair. Owners manage their own facilities; admins
	// manage any.
	UpsertCourtConfig(ctx context.Context, req UpsertCourtConfigRequest, actorID uuid.UUID, actorRole string) (*UpsertCourtConfigResult, error)
}

type courtConfigUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewCourtConfigUseCase(uow shared.UnitOfWork) CourtConfigCommands {
	return &courtConfigUseCaseImpl{uow: uow}
}

func (uc *courtConfigUseCaseImpl) UpsertCourtConfig(
	ctx context.Context,
	req UpsertCourtConfigRequest,
	actorID uuid.UUID,
	actorRole string,
) (*UpsertCourtConfigResult, error) {
	cfg, err := facility.NewCourtConfig(req.FacilityID, req.SportID, req.CourtCount, req.PricePerHourCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var configID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		facSnap, err := tx.Reads().FacilityByID(ctx, req.FacilityID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrFacilityNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if actorRole != string(user.RoleAdmin) && facSnap.OwnerID != actorID {
			return ErrNotFacilityOwner
		}

		id, err := tx.CourtConfigs().Upsert(ctx, tx.DB(), cfg)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		configID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &UpsertCourtConfigResult{CourtConfigID: configID}, nil
}
