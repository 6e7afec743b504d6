package internal

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type RegisterView struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type TablesView struct {
	Opcodes []TableEntry `json:"opcodes"`
	Functs  []TableEntry `json:"functs"`
}

// API serves the decoder over HTTP. repo may be nil, which disables history.
type API struct {
	dec          *Decoder
	repo         *SQLRepository
	log          logrus.FieldLogger
	historyLimit int
}

func NewAPI(dec *Decoder, repo *SQLRepository, log logrus.FieldLogger, historyLimit int) *API {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &API{dec: dec, repo: repo, log: log, historyLimit: historyLimit}
}

func (api *API) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = api.errorHandler
	api.Register(e)
	return e
}

func (api *API) Register(e *echo.Echo) {
	e.GET("/decode/:word", api.Decode)
	e.GET("/registers/:ref", api.Registers)
	e.GET("/tables", api.Tables)
	e.GET("/history", api.History)
}

func (api *API) errorHandler(err error, c echo.Context) {
	var (
		rangeErr *RangeError
		parseErr *ParseError
	)
	switch {
	case errors.As(err, &parseErr):
		err = echo.NewHTTPError(http.StatusBadRequest, parseErr.Error())
	case errors.As(err, &rangeErr), errors.Is(err, ErrNameNotFound):
		err = echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	c.Echo().DefaultHTTPErrorHandler(err, c)
}

func (api *API) Decode(c echo.Context) error {
	word, err := ParseInt(c.Param("word"))
	if err != nil {
		return err
	}

	instr, signals := api.dec.Decode(word)

	if api.repo != nil {
		if _, err := api.repo.Record(c.Request().Context(), instr, "http"); err != nil {
			api.log.WithError(err).WithField("word", word.String()).Warn("history not recorded")
		}
	}

	return c.JSON(http.StatusOK, NewInstructionView(instr, signals))
}

func (api *API) Registers(c echo.Context) error {
	index, name, err := LookupRegister(c.Param("ref"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, RegisterView{Index: index, Name: name})
}

func (api *API) Tables(c echo.Context) error {
	return c.JSON(http.StatusOK, TablesView{
		Opcodes: OpcodeEntries(),
		Functs:  FunctEntries(),
	})
}

func (api *API) History(c echo.Context) error {
	if api.repo == nil {
		return echo.NewHTTPError(http.StatusNotFound, "history disabled")
	}

	limit := api.historyLimit
	if s := c.QueryParam("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}

	rows, err := api.repo.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
