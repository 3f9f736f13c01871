package resthandler

import (
	"net/http"

	"github.com/labstack/echo"

	"github.com/golangid/questionario-service/internal/modules/resposta/domain"
	"github.com/golangid/questionario-service/internal/modules/resposta/usecase"
	"github.com/golangid/questionario-service/pkg/helper"
	shareddomain "github.com/golangid/questionario-service/pkg/shared/domain"
	"github.com/golangid/questionario-service/pkg/wrapper"
)

// RestHandler handler
type RestHandler struct {
	uc usecase.RespostaUsecase
}

// NewRestHandler create new rest handler
func NewRestHandler(uc usecase.RespostaUsecase) *RestHandler {
	return &RestHandler{uc: uc}
}

// Mount handler with root "/"
// handling version in here
func (h *RestHandler) Mount(root *echo.Group) {
	v1Root := root.Group(helper.V1)

	resposta := v1Root.Group("/resposta")
	resposta.POST("", h.registrarResposta)

	questionario := v1Root.Group("/questionario")
	questionario.GET("/:id/resposta", h.obterRespostas)
	questionario.GET("/:id/resultado", h.obterResultado)
}

func (h *RestHandler) registrarResposta(c echo.Context) error {

	var payload domain.RegistrarRespostaRequest
	if err := c.Bind(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "payload invalido", err).JSON(c.Response())
	}
	payload.IPAddress = c.RealIP()
	payload.UserAgent = c.Request().UserAgent()

	receipt, err := h.uc.RegistrarResposta(c.Request().Context(), &payload)
	if err != nil {
		return wrapper.NewHTTPResponse(httpStatusFromError(err), "falha ao registrar resposta", err).JSON(c.Response())
	}

	// acceptance for processing, persistence happens asynchronously
	return wrapper.NewHTTPResponse(http.StatusAccepted, "resposta aceita para processamento", receipt).JSON(c.Response())
}

func (h *RestHandler) obterRespostas(c echo.Context) error {

	respostas, err := h.uc.ObterRespostasPorQuestionario(c.Request().Context(), c.Param("id"))
	if err != nil {
		return wrapper.NewHTTPResponse(httpStatusFromError(err), "falha ao obter respostas", err).JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusOK, "sucesso", respostas).JSON(c.Response())
}

func (h *RestHandler) obterResultado(c echo.Context) error {

	resultado, err := h.uc.ObterResultadoQuestionario(c.Request().Context(), c.Param("id"))
	if err != nil {
		return wrapper.NewHTTPResponse(httpStatusFromError(err), "falha ao obter resultado", err).JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusOK, "sucesso", resultado).JSON(c.Response())
}

func httpStatusFromError(err error) int {
	switch shareddomain.KindOf(err) {
	case shareddomain.ErrKindValidation, shareddomain.ErrKindIncompleteResposta:
		return http.StatusBadRequest
	case shareddomain.ErrKindNotFound:
		return http.StatusNotFound
	case shareddomain.ErrKindClosedQuestionario:
		return http.StatusUnprocessableEntity
	case shareddomain.ErrKindTransport:
		return http.StatusServiceUnavailable
	}

	if _, ok := err.(helper.MultiError); ok {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
