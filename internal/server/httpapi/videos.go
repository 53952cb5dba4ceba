package httpapi

import (
	"net/http"
	"strconv"

	"github.com/okunevd/streamhub/internal/common"
	"github.com/okunevd/streamhub/internal/server/models"
	"github.com/okunevd/streamhub/internal/server/services"
)

// videoFilterFrom builds the listing filter from query params.
func videoFilterFrom(r *http.Request) models.VideoFilter {
	q := r.URL.Query()
	return models.VideoFilter{
		OwnerID: q.Get("userId"),
		Query:   q.Get("query"),
		SortBy:  q.Get("sortBy"),
		SortAsc: q.Get("sortType") == "asc",
	}
}

func (s *HTTPServer) handleListVideos(w http.ResponseWriter, r *http.Request) {
	filter := videoFilterFrom(r)
	filter.PublishedOnly = true
	page, limit, offset := pagination(r)

	videos, total, err := s.videos.List(r.Context(), filter, limit, offset)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{
		"videos": videos,
		"total":  total,
		"page":   page,
		"limit":  limit,
	}, "videos fetched successfully")
}

func (s *HTTPServer) handlePublishVideo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		s.respondError(w, r, common.ErrorInvalidInput)
		return
	}

	videoFile, closeVideo, err := formFile(r, "videoFile")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	defer closeVideo()

	thumbnail, closeThumb, err := formFile(r, "thumbnail")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	defer closeThumb()

	var duration float64
	if raw := r.FormValue("duration"); raw != "" {
		duration, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			s.respondError(w, r, common.ErrorInvalidInput)
			return
		}
	}

	identity := identityFrom(r.Context())
	video, err := s.videos.Publish(r.Context(), identity.ID, services.PublishParams{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Duration:    duration,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusCreated, video, "video published successfully")
}

func (s *HTTPServer) handleGetVideo(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "videoId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	video, err := s.videos.Get(r.Context(), id, identity.ID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, video, "video fetched successfully")
}

func (s *HTTPServer) handleUpdateVideo(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "videoId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		s.respondError(w, r, common.ErrorInvalidInput)
		return
	}

	thumbnail, closeThumb, err := formFile(r, "thumbnail")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	defer closeThumb()

	identity := identityFrom(r.Context())
	video, err := s.videos.Update(r.Context(), identity.ID, id,
		optionalFormValue(r, "title"), optionalFormValue(r, "description"), thumbnail)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, video, "video updated successfully")
}

func (s *HTTPServer) handleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "videoId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	if err := s.videos.Delete(r.Context(), identity.ID, id); err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, nil, "video deleted successfully")
}

func (s *HTTPServer) handleTogglePublish(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "videoId")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	video, err := s.videos.TogglePublish(r.Context(), identity.ID, id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, video, "publish state toggled successfully")
}
