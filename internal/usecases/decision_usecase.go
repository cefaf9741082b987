package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"farm-market.backend/internal/domain/entities"
	domainerrors "farm-market.backend/internal/domain/errors"
	"farm-market.backend/internal/domain/repositories"
	"farm-market.backend/internal/infrastructure/jobs"
	"farm-market.backend/internal/infrastructure/notifications"
	"farm-market.backend/pkg/logger"
)

// Notifier enqueues outcome notifications without blocking
type Notifier interface {
	Enqueue(ctx context.Context, n jobs.Notification)
}

// DecisionUsecase is the human review path. It is the only component
// allowed to set rejected on any entity.
type DecisionUsecase struct {
	userRepo     repositories.UserRepository
	farmerRepo   repositories.FarmerProfileRepository
	companyRepo  repositories.CompanyProfileRepository
	productRepo  repositories.ProductRepository
	decisionRepo repositories.DecisionRepository
	uow          repositories.UnitOfWork
	notifier     Notifier
}

// NewDecisionUsecase creates a new decision usecase
func NewDecisionUsecase(
	userRepo repositories.UserRepository,
	farmerRepo repositories.FarmerProfileRepository,
	companyRepo repositories.CompanyProfileRepository,
	productRepo repositories.ProductRepository,
	decisionRepo repositories.DecisionRepository,
	uow repositories.UnitOfWork,
	notifier Notifier,
) *DecisionUsecase {
	return &DecisionUsecase{
		userRepo:     userRepo,
		farmerRepo:   farmerRepo,
		companyRepo:  companyRepo,
		productRepo:  productRepo,
		decisionRepo: decisionRepo,
		uow:          uow,
		notifier:     notifier,
	}
}

// Decide applies an admin decision to a farmer, company or product.
// Rejection requires a reason. Farmer and company decisions update the
// owning user and the profile in one transaction so the two records
// can never disagree. Repeating an identical decision succeeds
// silently.
func (u *DecisionUsecase) Decide(ctx context.Context, actorID uuid.UUID, input *entities.DecideInput) (*entities.Decision, error) {
	if !input.TargetType.Valid() {
		return nil, domainerrors.Validation("unknown target type")
	}
	if input.Outcome == entities.DecisionRejected && input.Reason == "" {
		return nil, domainerrors.Validation("a reason is required when rejecting")
	}

	var recipient *entities.User

	switch input.TargetType {
	case entities.DecisionTargetProduct:
		owner, err := u.decideProduct(ctx, input)
		if err != nil {
			return nil, err
		}
		recipient = owner
	default:
		owner, err := u.decideProfile(ctx, input)
		if err != nil {
			return nil, err
		}
		recipient = owner
	}

	decision := &entities.Decision{
		ID:         uuid.New(),
		TargetType: input.TargetType,
		TargetID:   input.TargetID,
		Outcome:    input.Outcome,
		Reason:     optionalString(input.Reason),
		ActorID:    actorID,
		CreatedAt:  time.Now(),
	}
	if err := u.decisionRepo.Create(ctx, decision); err != nil {
		// The decision itself landed; a missing audit row is logged,
		// not surfaced.
		logger.Error(ctx, "failed to record decision audit row",
			zap.String("targetType", string(input.TargetType)),
			zap.String("targetId", input.TargetID.String()),
			zap.Error(err),
		)
	}

	if recipient != nil {
		u.notifier.Enqueue(ctx, jobs.Notification{
			Recipient: recipient.Email,
			Subject:   notifications.OutcomeSubject(input.TargetType, input.Outcome),
			Body:      notifications.OutcomeBody(recipient.Name, input.TargetType, input.Outcome, input.Reason),
		})
	}
	return decision, nil
}

// decideProfile flips the user and the profile together. Both writes
// run inside one unit of work; a failure of either rolls back both and
// is escalated in the log as an invariant-threatening event.
func (u *DecisionUsecase) decideProfile(ctx context.Context, input *entities.DecideInput) (*entities.User, error) {
	var ownerID uuid.UUID

	switch input.TargetType {
	case entities.DecisionTargetFarmer:
		profile, err := u.farmerRepo.GetByID(ctx, input.TargetID)
		if err != nil {
			return nil, err
		}
		ownerID = profile.UserID
	case entities.DecisionTargetCompany:
		profile, err := u.companyRepo.GetByID(ctx, input.TargetID)
		if err != nil {
			return nil, err
		}
		ownerID = profile.UserID
	}

	owner, err := u.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	approval := entities.ApprovalStatus(input.Outcome)
	account := owner.AccountStatus
	if input.Outcome == entities.DecisionApproved && account == entities.AccountPending {
		account = entities.AccountActive
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.UpdateStatus(txCtx, ownerID, approval, account); err != nil {
			return err
		}
		switch input.TargetType {
		case entities.DecisionTargetFarmer:
			return u.farmerRepo.UpdateStatus(txCtx, input.TargetID, approval)
		default:
			return u.companyRepo.UpdateStatus(txCtx, input.TargetID, approval)
		}
	})
	if err != nil {
		logger.Error(ctx, "profile decision transaction failed, user and profile unchanged",
			zap.String("targetType", string(input.TargetType)),
			zap.String("targetId", input.TargetID.String()),
			zap.String("userId", ownerID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	owner.ApprovalStatus = approval
	owner.AccountStatus = account
	return owner, nil
}

func (u *DecisionUsecase) decideProduct(ctx context.Context, input *entities.DecideInput) (*entities.User, error) {
	product, err := u.productRepo.GetByID(ctx, input.TargetID)
	if err != nil {
		return nil, err
	}

	if input.Outcome == entities.DecisionApproved {
		product.ApprovalStatus = entities.ApprovalApproved
		product.ApprovalDate = null.TimeFrom(time.Now())
		product.RejectionReason = null.String{}
	} else {
		product.ApprovalStatus = entities.ApprovalRejected
		product.ApprovalDate = null.Time{}
		product.RejectionReason = null.StringFrom(input.Reason)
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	farmer, err := u.farmerRepo.GetByID(ctx, product.FarmerProfileID)
	if err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, farmer.UserID)
}

// Users lists accounts for the admin console, optionally filtered by
// a name or email search term.
func (u *DecisionUsecase) Users(ctx context.Context, search string) ([]*entities.User, error) {
	return u.userRepo.List(ctx, search)
}

// History returns the decision trail for one target, newest first
func (u *DecisionUsecase) History(ctx context.Context, targetType entities.DecisionTarget, targetID uuid.UUID) ([]*entities.Decision, error) {
	if !targetType.Valid() {
		return nil, domainerrors.Validation("unknown target type")
	}
	return u.decisionRepo.ListByTarget(ctx, targetType, targetID)
}

// PendingFarmers lists farmer profiles awaiting review
func (u *DecisionUsecase) PendingFarmers(ctx context.Context, limit, offset int) ([]*entities.FarmerProfile, error) {
	return u.farmerRepo.ListByStatus(ctx, entities.ApprovalPending, limit, offset)
}

// PendingCompanies lists company profiles awaiting review
func (u *DecisionUsecase) PendingCompanies(ctx context.Context, limit, offset int) ([]*entities.CompanyProfile, error) {
	return u.companyRepo.ListByStatus(ctx, entities.ApprovalPending, limit, offset)
}

// PendingProducts lists products awaiting review
func (u *DecisionUsecase) PendingProducts(ctx context.Context, limit, offset int) ([]*entities.Product, error) {
	return u.productRepo.ListByStatus(ctx, entities.ApprovalPending, limit, offset)
}
