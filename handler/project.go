package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"ewintr.nl/ytcatalog/model"
	"ewintr.nl/ytcatalog/storage"
)

const maxBodySize = 1 << 20

type ProjectAPI struct {
	projectRepo storage.ProjectRepository
	logger      *slog.Logger
}

func NewProjectAPI(projectRepo storage.ProjectRepository, logger *slog.Logger) *ProjectAPI {
	return &ProjectAPI{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (p *ProjectAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	subPath, _ := ShiftPath(r.URL.Path)

	switch {
	case subPath != "":
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("subpath %q was not registered in the projects api", subPath))
	case r.Method == http.MethodGet:
		p.List(w, r)
	case r.Method == http.MethodPost:
		p.Create(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		Error(w, http.StatusMethodNotAllowed, "method not allowed", fmt.Errorf("method %s is not supported on projects", r.Method))
	}
}

func (p *ProjectAPI) List(w http.ResponseWriter, r *http.Request) {
	projects, err := p.projectRepo.FindAll(r.Context())
	if err != nil {
		p.returnErr(r.Context(), w, http.StatusInternalServerError, "could not list projects", err)
		return
	}
	if projects == nil {
		projects = []model.Project{}
	}

	if err := JSON(w, http.StatusOK, projects); err != nil {
		p.returnErr(r.Context(), w, http.StatusInternalServerError, "could not marshal response", err)
	}
}

// createRequest uses pointers so that a missing field can be told apart from
// a zero value.
type createRequest struct {
	VideoName      *string  `json:"videoName"`
	YoutubeChannel *string  `json:"youtubeChannel"`
	LengthInHours  *float64 `json:"lengthInHours"`
	TechStack      []string `json:"techStack"`
	Difficulty     *string  `json:"difficulty"`
	Link           *string  `json:"link"`
}

func (cr createRequest) project() (model.Project, error) {
	switch {
	case cr.VideoName == nil:
		return model.Project{}, &model.ValidationError{Field: "videoName", Reason: "is required"}
	case cr.YoutubeChannel == nil:
		return model.Project{}, &model.ValidationError{Field: "youtubeChannel", Reason: "is required"}
	case cr.LengthInHours == nil:
		return model.Project{}, &model.ValidationError{Field: "lengthInHours", Reason: "is required"}
	case cr.Difficulty == nil:
		return model.Project{}, &model.ValidationError{Field: "difficulty", Reason: "is required"}
	case cr.Link == nil:
		return model.Project{}, &model.ValidationError{Field: "link", Reason: "is required"}
	}

	techStack := cr.TechStack
	if techStack == nil {
		techStack = []string{}
	}
	project := model.Project{
		VideoName:      *cr.VideoName,
		YoutubeChannel: *cr.YoutubeChannel,
		LengthInHours:  *cr.LengthInHours,
		TechStack:      techStack,
		Difficulty:     model.Difficulty(*cr.Difficulty),
		Link:           *cr.Link,
	}

	return project, project.Validate()
}

func (p *ProjectAPI) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		p.returnErr(r.Context(), w, http.StatusBadRequest, "could not read request body", err)
		return
	}
	var req createRequest
	if err := json.Unmarshal(body, &req); err != nil {
		p.returnErr(r.Context(), w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	project, err := req.project()
	if err != nil {
		p.returnErr(r.Context(), w, http.StatusBadRequest, "invalid project", err)
		return
	}

	stored, err := p.projectRepo.Save(r.Context(), project)
	switch {
	case errors.Is(err, model.ErrDuplicate):
		p.returnErr(r.Context(), w, http.StatusConflict, "project already exists", err)
		return
	case errors.Is(err, model.ErrValidation):
		p.returnErr(r.Context(), w, http.StatusBadRequest, "invalid project", err)
		return
	case err != nil:
		p.returnErr(r.Context(), w, http.StatusInternalServerError, "could not save project", err)
		return
	}
	p.logger.Info("project created", slog.String("id", stored.ID.String()), slog.String("videoName", stored.VideoName))

	if err := JSON(w, http.StatusCreated, stored); err != nil {
		p.returnErr(r.Context(), w, http.StatusInternalServerError, "could not marshal response", err)
	}
}

func (p *ProjectAPI) returnErr(_ context.Context, w http.ResponseWriter, status int, message string, err error, details ...any) {
	p.logger.Error(message, slog.String("err", err.Error()), slog.String("details", fmt.Sprintf("%+v", details)))
	Error(w, status, message, err, details...)
}
