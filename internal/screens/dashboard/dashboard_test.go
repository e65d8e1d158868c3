package dashboard

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intervue-ai/intervue/internal/api"
	"github.com/intervue-ai/intervue/internal/store"
)

// mockBackend implements Backend for testing.
type mockBackend struct {
	candidates []api.Candidate
	listErr    error
	detail     *api.Candidate
	detailErr  error
	detailID   string
}

func (m *mockBackend) ListCandidates(_ context.Context, _, _ string) ([]api.Candidate, error) {
	return m.candidates, m.listErr
}

func (m *mockBackend) CandidateDetails(_ context.Context, id string) (*api.Candidate, error) {
	m.detailID = id
	return m.detail, m.detailErr
}

// mockRecords implements store.RecordRepo for testing.
type mockRecords struct {
	data map[string][]byte
}

func newMockRecords() *mockRecords {
	return &mockRecords{data: map[string][]byte{}}
}

func (m *mockRecords) Save(_ context.Context, name string, data []byte) error {
	m.data[name] = data
	return nil
}

func (m *mockRecords) Load(_ context.Context, name string) ([]byte, error) {
	return m.data[name], nil
}

func (m *mockRecords) Delete(_ context.Context, name string) error {
	delete(m.data, name)
	return nil
}

func intPtr(v int) *int { return &v }

func sampleCandidates() []api.Candidate {
	return []api.Candidate{
		{ID: "c1", Name: "Ada Lovelace", Email: "ada@example.com", Status: "completed", FinalScore: intPtr(17), CreatedAt: "2026-08-01"},
		{ID: "c2", Name: "Grace Hopper", Email: "grace@example.com", Status: "completed", FinalScore: intPtr(19), CreatedAt: "2026-08-03"},
		{ID: "c3", Name: "Alan Turing", Email: "alan@example.com", Status: "in-progress", CreatedAt: "2026-08-02"},
	}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func unlocked(backend *mockBackend, records *mockRecords) *DashboardScreen {
	s := New(backend, records, "interviewer123")
	s.Update(authCheckedMsg{Granted: false})
	s.passInput.SetValue("interviewer123")
	_, cmd := s.tryUnlock()
	for _, sub := range []tea.Cmd{cmd} {
		if sub == nil {
			continue
		}
		msg := sub()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, b := range batch {
				if m := b(); m != nil {
					s.Update(m)
				}
			}
		} else if msg != nil {
			s.Update(msg)
		}
	}
	return s
}

func TestWrongPasswordStaysLocked(t *testing.T) {
	s := New(&mockBackend{}, newMockRecords(), "interviewer123")

	s.passInput.SetValue("nope")
	_, cmd := s.tryUnlock()
	assert.Nil(t, cmd)
	assert.Equal(t, phaseAuth, s.phase)
	assert.True(t, s.authErr)
	assert.Empty(t, s.passInput.Value())
}

func TestUnlockPersistsGrant(t *testing.T) {
	records := newMockRecords()
	s := unlocked(&mockBackend{candidates: sampleCandidates()}, records)

	assert.Equal(t, phaseList, s.phase)
	assert.Equal(t, store.InterviewerAuthGranted, string(records.data[store.RecordInterviewerAuth]))
}

func TestStoredGrantSkipsPassword(t *testing.T) {
	records := newMockRecords()
	records.data[store.RecordInterviewerAuth] = []byte(store.InterviewerAuthGranted)
	s := New(&mockBackend{candidates: sampleCandidates()}, records, "interviewer123")

	msg := s.checkAuthCmd()()
	checked, ok := msg.(authCheckedMsg)
	require.True(t, ok)
	assert.True(t, checked.Granted)

	_, cmd := s.Update(checked)
	require.NotNil(t, cmd)
	s.Update(cmd())
	assert.Equal(t, phaseList, s.phase)
}

func TestScoreSortPutsUnscoredLast(t *testing.T) {
	s := unlocked(&mockBackend{candidates: sampleCandidates()}, newMockRecords())

	require.Len(t, s.visible, 3)
	assert.Equal(t, "Grace Hopper", s.visible[0].Name)
	assert.Equal(t, "Ada Lovelace", s.visible[1].Name)
	assert.Equal(t, "Alan Turing", s.visible[2].Name, "unscored candidate sorts last")
}

func TestNameSortPutsMissingNamesLast(t *testing.T) {
	list := []api.Candidate{
		{ID: "c1", Name: "", Email: "anon@example.com"},
		{ID: "c2", Name: "Ada Lovelace"},
		{ID: "c3", Name: "grace hopper"},
	}

	sortCandidates(list, SortByName)

	require.Len(t, list, 3)
	assert.Equal(t, "Ada Lovelace", list[0].Name)
	assert.Equal(t, "grace hopper", list[1].Name, "case-insensitive ascending")
	assert.Equal(t, "c1", list[2].ID, "nameless candidate sorts last")
}

func TestSortCycle(t *testing.T) {
	s := unlocked(&mockBackend{candidates: sampleCandidates()}, newMockRecords())

	s.handleKey(keyPress('s'))
	assert.Equal(t, SortByName, s.sortBy)
	assert.Equal(t, "Ada Lovelace", s.visible[0].Name)

	s.handleKey(keyPress('s'))
	assert.Equal(t, SortByDate, s.sortBy)
	assert.Equal(t, "Grace Hopper", s.visible[0].Name, "newest first")

	s.handleKey(keyPress('s'))
	assert.Equal(t, SortByScore, s.sortBy)
}

func TestStatusFilterCycle(t *testing.T) {
	s := unlocked(&mockBackend{candidates: sampleCandidates()}, newMockRecords())

	s.handleKey(keyPress('f'))
	require.Len(t, s.visible, 2)
	for _, c := range s.visible {
		assert.Equal(t, "completed", c.Status)
	}
}

func TestSearchFiltersByNameAndEmail(t *testing.T) {
	s := unlocked(&mockBackend{candidates: sampleCandidates()}, newMockRecords())

	s.searchInput.SetValue("grace")
	s.refreshVisible()
	require.Len(t, s.visible, 1)
	assert.Equal(t, "Grace Hopper", s.visible[0].Name)

	s.searchInput.SetValue("ALAN@")
	s.refreshVisible()
	require.Len(t, s.visible, 1)
	assert.Equal(t, "Alan Turing", s.visible[0].Name)
}

func TestEnterOpensDetail(t *testing.T) {
	detail := &api.Candidate{
		ID:     "c2",
		Name:   "Grace Hopper",
		Status: "completed",
		Session: &api.SessionDetail{
			ID:          "s2",
			IsCompleted: true,
			Questions: []api.Question{
				{ID: "q1", Text: "Q one", Difficulty: api.DifficultyEasy, Score: intPtr(2)},
			},
		},
	}
	backend := &mockBackend{candidates: sampleCandidates(), detail: detail}
	s := unlocked(backend, newMockRecords())

	_, cmd := s.handleKey(enter())
	require.NotNil(t, cmd)
	s.Update(cmd())

	assert.Equal(t, phaseDetail, s.phase)
	assert.Equal(t, "c2", backend.detailID, "detail fetch uses the selected (top-sorted) candidate")
	require.NotNil(t, s.detail)

	s.handleKey(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, phaseList, s.phase)
	assert.Nil(t, s.detail)
}

func TestListErrorIsSurfaced(t *testing.T) {
	s := New(&mockBackend{listErr: assert.AnError}, newMockRecords(), "pw")
	s.phase = phaseLoading

	s.Update(candidatesLoadedMsg{Err: assert.AnError})
	assert.Equal(t, phaseList, s.phase)
	assert.NotEmpty(t, s.errMsg)
}
