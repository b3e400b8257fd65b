package simulator

import (
	"encoding/json"
	"errors"

	"github.com/Fivegen-LLC/sdwan-lib/pkg/mq"
	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go"

	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

type (
	ISimulatorService interface {
		State(machineID int) (state entities.MachineState, err error)
		Fleet() (states []entities.MachineState)
		SetStatus(machineID int, status entities.MachineStatus) (state entities.MachineState, err error)
	}

	MQHandler struct {
		simulatorService ISimulatorService

		validate *validator.Validate
	}
)

func NewMQHandler(simulatorService ISimulatorService) *MQHandler {
	return &MQHandler{
		simulatorService: simulatorService,

		validate: validator.New(),
	}
}

// GetState returns in-memory state of single machine.
func (h *MQHandler) GetState(message *nats.Msg) (resp any) {
	var request struct {
		MachineID int `json:"machineId" validate:"required,gt=0"`
	}
	if err := json.Unmarshal(message.Data, &request); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	if err := h.validate.Struct(request); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	state, err := h.simulatorService.State(request.MachineID)
	if err != nil {
		if errors.Is(err, errs.ErrMachineNotFound) {
			return mq.NewBadRequestResponse(err.Error())
		}

		return mq.NewInternalErrorResponse(err.Error())
	}

	response := struct {
		mq.Response
		State entities.MachineState `json:"state"`
	}{
		Response: mq.NewOkResponse(),
		State:    state,
	}

	return response
}

// GetFleet returns in-memory state of all machines.
func (h *MQHandler) GetFleet(_ *nats.Msg) (resp any) {
	response := struct {
		mq.Response
		Machines []entities.MachineState `json:"machines"`
	}{
		Response: mq.NewOkResponse(),
		Machines: h.simulatorService.Fleet(),
	}

	return response
}

// SetStatus powers machine on or off.
func (h *MQHandler) SetStatus(message *nats.Msg) (resp any) {
	var request struct {
		MachineID int                    `json:"machineId" validate:"required,gt=0"`
		Status    entities.MachineStatus `json:"status" validate:"required,oneof=ON OFF"`
	}
	if err := json.Unmarshal(message.Data, &request); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	if err := h.validate.Struct(request); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	state, err := h.simulatorService.SetStatus(request.MachineID, request.Status)
	if err != nil {
		if errors.Is(err, errs.ErrMachineNotFound) || errors.Is(err, errs.ErrInvalidStatus) {
			return mq.NewBadRequestResponse(err.Error())
		}

		return mq.NewInternalErrorResponse(err.Error())
	}

	response := struct {
		mq.Response
		State entities.MachineState `json:"state"`
	}{
		Response: mq.NewOkResponse(),
		State:    state,
	}

	return response
}
