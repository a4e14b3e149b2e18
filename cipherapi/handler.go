// Package cipherapi exposes the cipher engine over HTTP.
package cipherapi

import (
	"net/http"

	"github.com/cohesivestack/valgo"
	"github.com/labstack/echo/v4"

	"github.com/AbaydullinAA/Project-Module2/alphabet"
	"github.com/AbaydullinAA/Project-Module2/cipher"
	"github.com/AbaydullinAA/Project-Module2/server"
	"github.com/AbaydullinAA/Project-Module2/valgoutil"
)

var _ server.Handler = (*Handler)(nil)

// Handler serves cipher transformations over a single loaded alphabet.
type Handler struct {
	alphabet *alphabet.Alphabet
}

// NewHandler creates a Handler operating over the given alphabet.
func NewHandler(a *alphabet.Alphabet) *Handler {
	return &Handler{alphabet: a}
}

// Register registers the cipher routes on the given group.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/alphabet", h.getAlphabet)
	g.POST("/caesar", h.caesar)
	g.POST("/vigenere", h.vigenere)
	g.POST("/atbash", h.atbash)
}

func (h *Handler) getAlphabet(c echo.Context) error {
	return server.SetResponse(c, http.StatusOK, AlphabetResponse{
		Alphabet: h.alphabet.String(),
		Length:   h.alphabet.Len(),
	})
}

func (h *Handler) caesar(c echo.Context) error {
	req, err := server.BindRequest[CaesarRequest](c)
	if err != nil {
		return err
	}

	mode, _ := cipher.ParseMode(req.Mode)
	result, err := cipher.Apply(cipher.NewCaesar(h.alphabet, req.Key), mode, req.Text)
	if err != nil {
		return err
	}

	return server.SetResponse(c, http.StatusOK, TransformResponse{Result: result})
}

func (h *Handler) vigenere(c echo.Context) error {
	req, err := server.BindRequest[VigenereRequest](c)
	if err != nil {
		return err
	}

	v, err := cipher.NewVigenere(h.alphabet, req.Key)
	if err != nil {
		return err
	}

	mode, _ := cipher.ParseMode(req.Mode)
	result, err := cipher.Apply(v, mode, req.Text)
	if err != nil {
		return err
	}

	return server.SetResponse(c, http.StatusOK, TransformResponse{Result: result})
}

func (h *Handler) atbash(c echo.Context) error {
	req, err := server.BindRequest[AtbashRequest](c)
	if err != nil {
		return err
	}

	mode, _ := cipher.ParseMode(req.Mode)
	result, err := cipher.Apply(cipher.NewAtbash(h.alphabet), mode, req.Text)
	if err != nil {
		return err
	}

	return server.SetResponse(c, http.StatusOK, TransformResponse{Result: result})
}

type CaesarRequest struct {
	Text string `json:"text"`
	Key  int    `json:"key"`
	Mode string `json:"mode"`
}

func (r CaesarRequest) Validate() error {
	return valgo.Is(
		valgo.String(r.Text, "text").Not().Blank(),
		valgoutil.ModeValidator(r.Mode, "mode"),
	).ToError()
}

type VigenereRequest struct {
	Text string `json:"text"`
	Key  string `json:"key"`
	Mode string `json:"mode"`
}

func (r VigenereRequest) Validate() error {
	return valgo.Is(
		valgo.String(r.Text, "text").Not().Blank(),
		valgoutil.ModeValidator(r.Mode, "mode"),
	).ToError()
}

type AtbashRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

func (r AtbashRequest) Validate() error {
	return valgo.Is(
		valgo.String(r.Text, "text").Not().Blank(),
		valgoutil.ModeValidator(r.Mode, "mode"),
	).ToError()
}

type TransformResponse struct {
	Result string `json:"result"`
}

type AlphabetResponse struct {
	Alphabet string `json:"alphabet"`
	Length   int    `json:"length"`
}
