package upload

import (
	"github.com/intervue-ai/intervue/internal/api"
)

// uploadedMsg is sent when the resume upload round-trip completes.
type uploadedMsg struct {
	Resp *api.UploadResumeResponse
	Err  error
}

// candidateCheckedMsg is sent when create-or-check-candidate completes.
type candidateCheckedMsg struct {
	Resp *api.CreateOrCheckResponse
	Err  error
}

// infoSavedMsg is sent when update-candidate-info completes.
type infoSavedMsg struct {
	Err error
}
