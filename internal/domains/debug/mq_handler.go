package debug

import (
	"bytes"
	"encoding/json"
	"runtime/pprof"

	"github.com/Fivegen-LLC/sdwan-lib/pkg/mq"
	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const defaultProfile = "heap"

type MQHandler struct {
	validate *validator.Validate
}

func NewMQHandler() *MQHandler {
	return &MQHandler{
		validate: validator.New(),
	}
}

// DumpProfile writes named pprof profile of running simulator, heap by default.
func (h *MQHandler) DumpProfile(message *nats.Msg) (resp any) {
	var request struct {
		Profile string `json:"profile" validate:"oneof=heap goroutine allocs threadcreate block mutex"`
	}

	if len(message.Data) > 0 {
		if err := json.Unmarshal(message.Data, &request); err != nil {
			return mq.NewBadRequestResponse(err.Error())
		}
	}

	request.Profile = lo.Ternary(lo.IsEmpty(request.Profile), defaultProfile, request.Profile)
	if err := h.validate.Struct(request); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	var buf bytes.Buffer
	if err := pprof.Lookup(request.Profile).WriteTo(&buf, 0); err != nil {
		log.Error().Err(err).Str("profile", request.Profile).Msg("DumpProfile: write profile error")
		return mq.NewInternalErrorResponse(err.Error())
	}

	response := struct {
		mq.Response

		Profile string `json:"profile"`
		Data    []byte `json:"data"`
	}{
		Response: mq.NewOkResponse(),
		Profile:  request.Profile,
		Data:     buf.Bytes(),
	}

	return response
}
