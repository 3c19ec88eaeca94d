// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/session"
	"github.com/danielhkuo/quickly-tally/testutil"
)

func TestCreateSession(t *testing.T) {
	handler := NewSessionHandler()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		req := testutil.MakeRequest("POST", "/sessions", nil, nil)
		w := httptest.NewRecorder()

		handler.CreateSession(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.CreateSessionResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.SessionID == "" {
			t.Fatal("Expected non-empty session_id")
		}
		if len(resp.SessionID) > session.MaxLength {
			t.Errorf("Session id longer than %d: %d", session.MaxLength, len(resp.SessionID))
		}
		if seen[resp.SessionID] {
			t.Errorf("Duplicate session id: %s", resp.SessionID)
		}
		seen[resp.SessionID] = true
	}
}

func TestCreateSession_UsableForVoting(t *testing.T) {
	engine, _ := testutil.SetupTestEngine(t)
	items := NewItemHandler(engine, testutil.GetTestConfig(), nil)
	sessions := NewSessionHandler()

	listID := testutil.CreateTestList(t, engine, "List")
	itemID := testutil.CreateTestItem(t, engine, listID, "Item")

	w := httptest.NewRecorder()
	sessions.CreateSession(w, testutil.MakeRequest("POST", "/sessions", nil, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateSessionResponse
	testutil.AssertJSON(t, w, &resp)

	req := testutil.MakeRequest("POST", "/items/"+itemID+"/increment", nil, testutil.SessionHeader(resp.SessionID))
	req.SetPathValue("id", itemID)
	w = httptest.NewRecorder()

	items.Increment(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
}
