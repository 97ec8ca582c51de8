package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"child-immunization-tracker/internal/adapters/auth/token"
	"child-immunization-tracker/internal/router"
)

func TestHTTP_EndToEnd_ParentAndHealthcareWorker(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{DevMode: true}))
	defer ts.Close()

	parentID := "parent-1"
	otherParentID := "parent-2"
	nurseID := "nurse-1"

	setRole(t, ts.URL, parentID, "parent")
	setRole(t, ts.URL, otherParentID, "parent")
	setRole(t, ts.URL, nurseID, "healthcare_worker")

	// 120 días: todo lo de 0..98 días está vencido, nada cae en la ventana de 7 días
	dob := time.Now().UTC().AddDate(0, 0, -120).Format("2006-01-02")

	// 1) Validación de registro
	{
		st, _ := doReq(t, ts.URL, "POST", "/children", parentID, map[string]any{
			"name": "Ana",
			"dob":  dob,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing fields, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/children", nurseID, map[string]any{
			"name": "Ana", "dob": dob, "parent_name": "Maria", "contact": "555-0100",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 when a healthcare worker registers, got %d", st)
		}
	}

	// 2) Padre registra al niño
	childID := registerChild(t, ts.URL, parentID, map[string]any{
		"name":        "Ana",
		"dob":         dob,
		"parent_name": "Maria",
		"contact":     "555-0100",
	})

	// 3) Padre ve el calendario; otro padre no
	{
		st, body := doReq(t, ts.URL, "GET", "/children/"+childID+"/schedule", parentID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 schedule, got %d body=%s", st, string(body))
		}
		var items []struct {
			Name          string `json:"name"`
			DisplayStatus string `json:"display_status"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 21 {
			t.Fatalf("expected 21 vaccinations, got %d", len(items))
		}
		if items[0].Name != "BCG" || items[0].DisplayStatus != "Missed" {
			t.Fatalf("expected BCG missed first, got %+v", items[0])
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/children/"+childID+"/schedule", otherParentID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for another parent, got %d", st)
		}
	}

	// 4) Solo personal de salud marca dosis
	bcgDone := "/children/" + childID + "/schedule/" + url.PathEscape("BCG") + "/done"
	{
		st, _ := doReq(t, ts.URL, "POST", bcgDone, parentID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 when parent marks done, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", bcgDone, nurseID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 mark done, got %d body=%s", st, string(body))
		}
		var e struct {
			Status    string  `json:"status"`
			GivenDate *string `json:"given_date"`
		}
		_ = json.Unmarshal(body, &e)
		if e.Status != "Done" || e.GivenDate == nil || *e.GivenDate != time.Now().UTC().Format("2006-01-02") {
			t.Fatalf("unexpected mark done response %s", string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", bcgDone, nurseID, nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 marking twice, got %d", st)
		}
	}
	{
		path := "/children/" + childID + "/schedule/" + url.PathEscape("OPV - 0") + "/done"
		st, body := doReq(t, ts.URL, "POST", path, nurseID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 for name with spaces, got %d body=%s", st, string(body))
		}
	}

	// 5) Dashboard del padre crea avisos una sola vez
	var firstCreated int
	{
		st, body := doReq(t, ts.URL, "GET", "/dashboard", parentID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d body=%s", st, string(body))
		}
		var resp struct {
			Children []struct {
				ID     string `json:"id"`
				Done   int    `json:"done"`
				Missed int    `json:"missed"`
			} `json:"children"`
			NewNotifications []struct {
				ID string `json:"id"`
			} `json:"new_notifications"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Children) != 1 || resp.Children[0].Done != 2 {
			t.Fatalf("unexpected dashboard %s", string(body))
		}
		firstCreated = len(resp.NewNotifications)
		if firstCreated != resp.Children[0].Missed {
			t.Fatalf("expected one notification per missed dose, got %d vs %d", firstCreated, resp.Children[0].Missed)
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/me/notifications/sync", parentID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 sync, got %d body=%s", st, string(body))
		}
		var resp struct {
			Created []any `json:"created"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Created) != 0 {
			t.Fatalf("expected second evaluation to create nothing, got %d", len(resp.Created))
		}
	}

	// 6) Bandeja y marcar leído
	{
		items, unread := listNotifications(t, ts.URL, parentID)
		if len(items) != firstCreated || unread != firstCreated {
			t.Fatalf("expected %d unread, got items=%d unread=%d", firstCreated, len(items), unread)
		}

		st, _ := doReq(t, ts.URL, "POST", "/me/notifications/"+url.PathEscape(items[0])+"/read", parentID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 mark read, got %d", st)
		}

		_, unread = listNotifications(t, ts.URL, parentID)
		if unread != firstCreated-1 {
			t.Fatalf("expected unread to drop by one, got %d", unread)
		}
	}

	// 7) Personal de salud: búsqueda y cobertura
	{
		st, body := doReq(t, ts.URL, "GET", "/dashboard?q=an", nurseID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 hcw dashboard, got %d body=%s", st, string(body))
		}
		var resp struct {
			Children []struct {
				ID string `json:"id"`
			} `json:"children"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Children) != 1 || resp.Children[0].ID != childID {
			t.Fatalf("unexpected search result %s", string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/reports/coverage?age_band=0-6", nurseID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 coverage, got %d body=%s", st, string(body))
		}
		var resp struct {
			Children int `json:"children"`
			Entries  []struct {
				Name     string  `json:"name"`
				Done     int     `json:"done"`
				Total    int     `json:"total"`
				Coverage float64 `json:"coverage"`
			} `json:"entries"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Children != 1 || len(resp.Entries) != 21 {
			t.Fatalf("unexpected coverage %s", string(body))
		}
		if resp.Entries[0].Name != "BCG" || resp.Entries[0].Done != 1 || resp.Entries[0].Coverage != 100 {
			t.Fatalf("unexpected BCG entry %+v", resp.Entries[0])
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/reports/coverage?age_band=99", nurseID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown age band, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/reports/coverage", parentID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 coverage for parent, got %d", st)
		}
	}
}

func TestHTTP_RoleRequired(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{DevMode: true}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "GET", "/dashboard", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "GET", "/dashboard", "new-user", nil)
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 before role selection, got %d", st)
	}

	st, body := doReq(t, ts.URL, "GET", "/me", "new-user", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 me, got %d", st)
	}
	var me struct {
		Role *string `json:"role"`
	}
	_ = json.Unmarshal(body, &me)
	if me.Role != nil {
		t.Fatalf("expected null role, got %q", *me.Role)
	}

	st, _ = doReq(t, ts.URL, "PUT", "/me/role", "new-user", map[string]any{"role": "admin"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d", st)
	}
}

func TestHTTP_AnonymousSignInWithToken(t *testing.T) {
	mgr, err := token.New(token.Config{Secret: "test-secret", Issuer: "immunization"})
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: mgr, TokenIssuer: mgr}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/auth/anonymous", "", nil)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 sign in, got %d body=%s", st, string(body))
	}
	var sess struct {
		Token string `json:"token"`
		User  struct {
			ID        string `json:"id"`
			Anonymous bool   `json:"anonymous"`
		} `json:"user"`
	}
	_ = json.Unmarshal(body, &sess)
	if sess.Token == "" || sess.User.ID == "" || !sess.User.Anonymous {
		t.Fatalf("unexpected session %s", string(body))
	}

	// Sin DevMode el header de debug no autentica
	if st, _ := doReq(t, ts.URL, "GET", "/me", sess.User.ID, nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with debug header outside dev mode, got %d", st)
	}

	st, body = doBearer(t, ts.URL, "PUT", "/me/role", sess.Token, map[string]any{"role": "parent"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 set role, got %d body=%s", st, string(body))
	}

	st, body = doBearer(t, ts.URL, "GET", "/dashboard", sess.Token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 dashboard with token, got %d body=%s", st, string(body))
	}

	if st, _ := doBearer(t, ts.URL, "GET", "/me", "garbage", nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", st)
	}
}

func TestHTTP_CatalogAndHealth(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{DevMode: true}))
	defer ts.Close()

	if st, _ := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}

	st, body := doReq(t, ts.URL, "GET", "/vaccines", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 vaccines, got %d", st)
	}
	var items []map[string]any
	_ = json.Unmarshal(body, &items)
	if len(items) != 21 {
		t.Fatalf("expected 21 vaccines, got %d", len(items))
	}

	if st, _ := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200 swagger doc, got %d", st)
	}
}

func setRole(t *testing.T, baseURL, userID, role string) {
	t.Helper()

	st, body := doReq(t, baseURL, "PUT", "/me/role", userID, map[string]any{"role": role})
	if st != http.StatusOK {
		t.Fatalf("expected 200 set role, got %d body=%s", st, string(body))
	}
}

func registerChild(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/children", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register child, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID                string `json:"id"`
		ScheduledVaccines int    `json:"scheduled_vaccines"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" || resp.ScheduledVaccines != 21 {
		t.Fatalf("register child: unexpected body=%s", string(body))
	}
	return resp.ID
}

func listNotifications(t *testing.T, baseURL, userID string) ([]string, int) {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/me/notifications", userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 notifications, got %d body=%s", st, string(body))
	}

	var resp struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
		UnreadCount int `json:"unread_count"`
	}
	_ = json.Unmarshal(body, &resp)

	ids := make([]string, 0, len(resp.Items))
	for _, it := range resp.Items {
		ids = append(ids, it.ID)
	}
	return ids, resp.UnreadCount
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()
	return send(t, baseURL, method, path, body, func(req *http.Request) {
		if debugUserID != "" {
			req.Header.Set("X-Debug-User-ID", debugUserID)
		}
	})
}

func doBearer(t *testing.T, baseURL, method, path, bearer string, body any) (int, []byte) {
	t.Helper()
	return send(t, baseURL, method, path, body, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+bearer)
	})
}

func send(t *testing.T, baseURL, method, path string, body any, decorate func(*http.Request)) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	decorate(req)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
