package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/theatrical-statements/api"
	"github.com/metinatakli/theatrical-statements/internal/domain"
)

func (app *application) ListPlays(w http.ResponseWriter, r *http.Request) {
	plays, err := app.playRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PlayListResponse{
		Plays: make([]api.Play, len(plays)),
	}

	for i, play := range plays {
		resp.Plays[i] = toApiPlay(play)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetPlay(w http.ResponseWriter, r *http.Request, playId string) {
	play, err := app.playRepo.GetByID(r.Context(), playId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, api.PlayResponse{Play: toApiPlay(play)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreatePlay(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreatePlayJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	genre, err := domain.ParseGenre(input.Genre)
	if err != nil {
		app.unprocessableEntityResponse(w, r, err)
		return
	}

	play, err := domain.NewPlay(input.Name, input.Lines, genre)
	if err != nil {
		app.unprocessableEntityResponse(w, r, err)
		return
	}

	catalogPlay := &domain.CatalogPlay{
		ID:   input.Id,
		Play: play,
	}

	err = app.playRepo.Create(r.Context(), catalogPlay)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPlayAlreadyExists):
			logger.Warn("play creation rejected: id already taken", "play_id", input.Id)
			app.editConflictResponseWithErr(w, r, fmt.Errorf("a play with id %q already exists", input.Id))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("play added to catalog", "play_id", catalogPlay.ID, "genre", genre)

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/plays/%s", catalogPlay.ID))

	err = app.writeJSON(w, http.StatusCreated, api.PlayResponse{Play: toApiPlay(catalogPlay)}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiPlay(play *domain.CatalogPlay) api.Play {
	return api.Play{
		Id:        play.ID,
		Name:      play.Play.Name(),
		Lines:     play.Play.Lines(),
		Genre:     api.Genre(play.Play.Genre()),
		CreatedAt: play.CreatedAt,
	}
}
