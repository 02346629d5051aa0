package handlers

import (
	"io"
	"net/http"

	"p9e.in/infrasight/config"
	"p9e.in/infrasight/store"
)

// Uploads are citizen phone photos and short clips; 50MB covers both.
const maxUploadBytes = 50 << 20

// UploadProjectMedia accepts a citizen evidence upload (multipart
// field "file", optional "caption" and "uploader_name") for a project.
// The extension filter runs here, before the store is involved; the
// media type is derived from the extension.
func UploadProjectMedia(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}
	// The project must exist before we accept bytes for it.
	if _, err := config.Data.GetProjectByID(projectID); err != nil {
		writeStoreError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	mediaType, ok := store.MediaTypeForFilename(header.Filename)
	if !ok {
		http.Error(w, "unsupported file type: only jpg, jpeg, png, mp4, mov, avi are accepted", http.StatusBadRequest)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read upload: "+err.Error(), http.StatusInternalServerError)
		return
	}

	relPath, err := config.Data.SaveMedia(projectID, header.Filename,
		content, mediaType, r.FormValue("caption"), r.FormValue("uploader_name"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"file_path":  relPath,
		"media_type": mediaType,
	})
}

// ListProjectMedia returns a project's evidence newest first. Public.
func ListProjectMedia(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}
	media, err := config.Data.ListMedia(projectID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, media)
}
