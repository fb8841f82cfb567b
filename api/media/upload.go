package media

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"stonex_server/lib"
	"stonex_server/services"

	"github.com/MonkyMars/gecho"
)

func (mr *MediaRoutesManager) Upload(w http.ResponseWriter, r *http.Request) {
	if !mr.mediaService.CanUpload() {
		mr.logger.Error("Upload attempted without media host configuration")
		gecho.InternalServerError(w, gecho.WithMessage(notConfiguredMessage), gecho.Send())
		return
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		mr.logger.Warn("Failed to parse upload form", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("No file provided"), gecho.Send())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("No file provided"), gecho.Send())
		return
	}
	defer file.Close()

	result, err := mr.mediaService.Upload(r.Context(), header.Filename, file)
	if err != nil {
		mr.writeUploadError(w, err, "Failed to upload to Cloudinary", http.StatusBadRequest)
		return
	}

	gecho.Success(w, gecho.WithData(result), gecho.Send())
}

func (mr *MediaRoutesManager) UploadMultiple(w http.ResponseWriter, r *http.Request) {
	if !mr.mediaService.CanUpload() {
		mr.logger.Error("Upload attempted without media host configuration")
		gecho.InternalServerError(w, gecho.WithMessage(notConfiguredMessage), gecho.Send())
		return
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		mr.logger.Warn("Failed to parse upload form", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("No files provided"), gecho.Send())
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		gecho.BadRequest(w, gecho.WithMessage("No files provided"), gecho.Send())
		return
	}

	files := make([]services.MediaFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, mediaFile(fh))
	}

	results, err := mr.mediaService.UploadMany(r.Context(), files)
	if err != nil {
		mr.writeUploadError(w, err, "Failed to upload images", http.StatusInternalServerError)
		return
	}

	gecho.Success(w, gecho.WithData(map[string]any{"images": results}), gecho.Send())
}

func mediaFile(fh *multipart.FileHeader) services.MediaFile {
	return services.MediaFile{
		Name: fh.Filename,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// writeUploadError maps a media failure to a response. upstreamStatus is
// used when the host itself rejected the upload.
func (mr *MediaRoutesManager) writeUploadError(w http.ResponseWriter, err error, msg string, upstreamStatus int) {
	if errors.Is(err, lib.ErrMediaNotConfigured) {
		gecho.InternalServerError(w, gecho.WithMessage(notConfiguredMessage), gecho.Send())
		return
	}

	details := err.Error()
	status := http.StatusInternalServerError
	if upstream, ok := services.IsUpstreamError(err); ok {
		details = upstream.Body
		status = upstreamStatus
	}

	mr.logger.Error(msg, gecho.Field("error", err))
	data := map[string]any{"details": details}
	if status == http.StatusBadRequest {
		gecho.BadRequest(w, gecho.WithMessage(msg), gecho.WithData(data), gecho.Send())
		return
	}
	gecho.InternalServerError(w, gecho.WithMessage(msg), gecho.WithData(data), gecho.Send())
}
