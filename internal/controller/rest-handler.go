package controller

import (
	"errors"
	"net/http"

	"github.com/fitclub/server/internal/service/catalog"
	"github.com/fitclub/server/internal/service/member"
	"github.com/fitclub/server/pkg/rest"
)

type registerRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	MembershipTier string `json:"membership_tier" validate:"required,oneof=subadmin basic premium vip"`
}

type registerResponse struct {
	ProfileId string `json:"profile_id"`
	Uid       string `json:"uid"`
	Token     string `json:"token"`
	Message   string `json:"message"`
}

func (c *controller) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest

	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read register body", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	if validationErrors, ok := c.validate.Validate(req); !ok {
		c.logger.DebugContext(r.Context(), "register validation failed", "errors", validationErrors)
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"errors": validationErrors})
		return
	}

	resp, err := c.memberService.Register(r.Context(), &member.RegisterParams{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		MembershipTier: member.MembershipTier(req.MembershipTier),
	})
	if err != nil {
		c.logger.InfoContext(r.Context(), "registration failed", "error", err)
		rest.WriteJSON(w, registerErrorStatus(err), rest.Envelope{"error": member.UserMessage(err)})
		return
	}

	rest.WriteJSON(w, http.StatusCreated, rest.Envelope{"data": registerResponse{
		ProfileId: resp.ProfileId,
		Uid:       resp.Uid,
		Token:     resp.Token,
		Message:   "Registration successful!",
	}})
}

func registerErrorStatus(err error) int {
	switch {
	case errors.Is(err, member.ErrEmailAlreadyInUse):
		return http.StatusConflict
	case errors.Is(err, member.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.Is(err, member.ErrNameRequired),
		errors.Is(err, member.ErrEmailRequired),
		errors.Is(err, member.ErrPasswordRequired),
		errors.Is(err, member.ErrInvalidEmail),
		errors.Is(err, member.ErrWeakPassword),
		errors.Is(err, member.ErrInvalidMembershipTier):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (c *controller) listWorkouts(w http.ResponseWriter, r *http.Request) {
	groups, err := c.catalogService.ListWorkouts(r.Context())
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to list workouts", "error", err)
		rest.WriteJSON(w, http.StatusInternalServerError, rest.Envelope{"error": "failed to load workouts"})
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": groups})
}

type addVideoRequest struct {
	Title        string `json:"title" validate:"required"`
	Channel      string `json:"channel" validate:"required"`
	Category     string `json:"category"`
	ThumbnailURL string `json:"thumbnail_url"`
	VideoURL     string `json:"video_url" validate:"required"`
	Description  string `json:"description"`
}

func (c *controller) addVideo(w http.ResponseWriter, r *http.Request) {
	var req addVideoRequest

	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read video body", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	if validationErrors, ok := c.validate.Validate(req); !ok {
		c.logger.DebugContext(r.Context(), "video validation failed", "errors", validationErrors)
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"errors": validationErrors})
		return
	}

	workout, err := c.catalogService.AddVideo(r.Context(), &catalog.AddVideoParams{
		Title:        req.Title,
		Channel:      req.Channel,
		Category:     req.Category,
		ThumbnailURL: req.ThumbnailURL,
		VideoURL:     req.VideoURL,
		Description:  req.Description,
	})
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to add video", "error", err)
		rest.WriteJSON(w, http.StatusInternalServerError, rest.Envelope{"error": "failed to add video"})
		return
	}

	rest.WriteJSON(w, http.StatusCreated, rest.Envelope{"data": workout})
}
