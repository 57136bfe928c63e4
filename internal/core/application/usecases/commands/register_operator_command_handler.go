package commands

import (
	"context"

	"freight/internal/core/domain/model/operator"
)

type RegisterOperatorCommandHandler struct {
	uowFactory OperatorUoWFactory
}

func NewRegisterOperatorCommandHandler(uowFactory OperatorUoWFactory) RegisterOperatorCommandHandler {
	return RegisterOperatorCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RegisterOperatorCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterOperatorCommand,
) (*operator.Operator, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	account, err := operator.NewOperator(cmd.OperatorID(), cmd.Email(), cmd.Username(), cmd.Password(),
		cmd.IsStaff(), cmd.IsSuperuser())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OperatorRepository().Add(ctx, account); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return account, nil
}
