package dashboard

import (
	"github.com/intervue-ai/intervue/internal/api"
)

// candidatesLoadedMsg is sent when the candidate list fetch completes.
type candidatesLoadedMsg struct {
	Candidates []api.Candidate
	Err        error
}

// detailLoadedMsg is sent when a candidate detail fetch completes.
type detailLoadedMsg struct {
	Candidate *api.Candidate
	Err       error
}

// authCheckedMsg is sent after the stored interviewer authorization has been
// looked up.
type authCheckedMsg struct {
	Granted bool
}
