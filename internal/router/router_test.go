package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"vet-clinic/internal/adapters/auth/jwtauth"
	"vet-clinic/internal/adapters/auth/password"
	"vet-clinic/internal/router"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/swaggo/swag"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	tokens, err := jwtauth.NewManager(jwtauth.Config{Secret: testSecret, Algorithm: "HS256", TTL: 30 * time.Minute})
	if err != nil {
		t.Fatalf("jwt manager: %v", err)
	}
	return router.NewRouter(router.Options{
		Tokens:         tokens,
		Hasher:         password.NewHasher(bcrypt.MinCost),
		AllowedOrigins: []string{"http://localhost:3000"},
		RequestTimeout: 5 * time.Second,
		Workers:        8,
	})
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(newHandler(t))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_UsersAndPets(t *testing.T) {
	ts := newServer(t)

	// 1) Registro y login
	register(t, ts.URL, "Ana", "ana@example.com", "user")
	register(t, ts.URL, "Bob", "bob@example.com", "user")
	register(t, ts.URL, "Clinic", "staff@example.com", "service")

	{
		st, body := doReq(t, ts.URL, "POST", "/users/register", "", map[string]any{
			"name": "Ana 2", "email": "ANA@example.com", "password": "secret",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 on duplicate email, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := postForm(t, ts.URL, "/users/login", "ana@example.com", "wrong")
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 on bad password, got %d", st)
		}
	}

	ana := login(t, ts.URL, "ana@example.com")
	bob := login(t, ts.URL, "bob@example.com")
	staff := login(t, ts.URL, "staff@example.com")

	{
		st, body := doReq(t, ts.URL, "GET", "/users/me", ana, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 /users/me, got %d body=%s", st, string(body))
		}
		me := decode(t, body)
		if me["email"] != "ana@example.com" || me["role"] != "user" {
			t.Fatalf("unexpected me: %v", me)
		}
	}

	// 2) Catálogo: solo el personal escribe
	{
		st, _ := doReq(t, ts.URL, "POST", "/breeds/", ana, map[string]any{"name": "Beagle"})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 breed create by user, got %d", st)
		}
	}
	breedID := create(t, ts.URL, "/breeds/", staff, map[string]any{"name": "Beagle"})

	// 3) Ana crea mascota
	petID := create(t, ts.URL, "/pets/", ana, map[string]any{
		"name": "Rex", "age": 3, "breed_id": id(t, breedID),
	})
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, ana, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get own pet, got %d body=%s", st, string(body))
		}
		pet := decode(t, body)
		breed, _ := pet["breed"].(map[string]any)
		if breed["name"] != "Beagle" {
			t.Fatalf("expected nested breed, got %v", pet)
		}
		if pet["recommendations"] != nil {
			t.Fatalf("expected null recommendations, got %v", pet["recommendations"])
		}
	}

	// 4) Bob no ve ni toca la mascota de Ana
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/", bob, nil)
		if st != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
			t.Fatalf("expected empty list for bob, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID, bob, nil)
		if st != http.StatusNotFound || decode(t, body)["detail"] != "Pet not found" {
			t.Fatalf("expected 404 for foreign pet, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/pets/"+petID, bob, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 deleting foreign pet, got %d", st)
		}
	}

	// 5) all=true requiere pets:read_all
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/?all=true", ana, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 all=true by user, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/pets/?all=true", staff, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 all=true by staff, got %d", st)
		}
		var list []map[string]any
		if err := json.Unmarshal(body, &list); err != nil || len(list) != 1 {
			t.Fatalf("expected 1 pet, got %s", string(body))
		}
	}

	// 6) Update por el dueño
	{
		st, body := doReq(t, ts.URL, "PUT", "/pets/"+petID, ana, map[string]any{
			"name": "Rex", "age": 4, "breed_id": id(t, breedID), "recommendations": "less food",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update, got %d body=%s", st, string(body))
		}
		if got := decode(t, body); got["age"] != float64(4) || got["recommendations"] != "less food" {
			t.Fatalf("unexpected updated pet: %v", got)
		}
	}

	// 7) FK a una raza inexistente
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/", ana, map[string]any{
			"name": "Ghost", "age": 1, "breed_id": 999,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 missing breed, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/", ana, map[string]any{
			"name": "Neg", "age": -1, "breed_id": id(t, breedID),
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 negative age, got %d", st)
		}
	}
}

func TestHTTP_TokenRejections(t *testing.T) {
	ts := newServer(t)
	register(t, ts.URL, "Ana", "ana@example.com", "user")
	token := login(t, ts.URL, "ana@example.com")

	expired := sign(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ana@example.com", "email": "ana@example.com", "role": "user",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	otherAlg := sign(t, jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "ana@example.com", "email": "ana@example.com", "role": "user",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	unknownUser := sign(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ghost@example.com", "exp": time.Now().Add(time.Hour).Unix(),
	})

	// payload de otro token con la firma del válido
	parts := strings.Split(token, ".")
	tampered := strings.Join([]string{parts[0], strings.Split(unknownUser, ".")[1], parts[2]}, ".")

	cases := map[string]string{
		"missing":      "",
		"garbage":      "not-a-jwt",
		"tampered":     tampered,
		"expired":      expired,
		"other alg":    otherAlg,
		"unknown user": unknownUser,
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			st, body := doReq(t, ts.URL, "GET", "/breeds/", tok, nil)
			if st != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d body=%s", st, string(body))
			}
		})
	}

	st, _ := doReq(t, ts.URL, "GET", "/breeds/", token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
}

func TestHTTP_EndToEnd_AppointmentsAndProcedure(t *testing.T) {
	ts := newServer(t)
	register(t, ts.URL, "Ana", "ana@example.com", "user")
	register(t, ts.URL, "Clinic", "staff@example.com", "service")
	ana := login(t, ts.URL, "ana@example.com")
	staff := login(t, ts.URL, "staff@example.com")

	// 1) Catálogo
	breedID := create(t, ts.URL, "/breeds/", staff, map[string]any{"name": "Collie"})
	clinicID := create(t, ts.URL, "/clinics/", staff, map[string]any{
		"name": "Central", "address": "Main St 1", "phone": "555-0100",
	})
	vaccineID := create(t, ts.URL, "/vaccines/", staff, map[string]any{
		"name": "Rabies", "manufacturer": "Acme", "type": "viral",
	})
	typeID := create(t, ts.URL, "/analysis-types/", staff, map[string]any{
		"name": "Blood", "description": "CBC", "instructions": "fasting",
	})
	petID := create(t, ts.URL, "/pets/", ana, map[string]any{"name": "Lassie", "age": 5, "breed_id": id(t, breedID)})

	// 2) Timestamp mal formado
	{
		st, _ := doReq(t, ts.URL, "POST", "/appointments/", ana, map[string]any{
			"pet_id": id(t, petID), "clinic_id": id(t, clinicID), "scheduled_at": "tomorrow", "status": "scheduled",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 malformed timestamp, got %d", st)
		}
	}

	// 3) Cita sin procedimiento
	apptID := create(t, ts.URL, "/appointments/", ana, map[string]any{
		"pet_id": id(t, petID), "clinic_id": id(t, clinicID),
		"scheduled_at": "2026-03-01T09:30:00-03:00", "status": "scheduled",
	})
	{
		appt := getJSON(t, ts.URL, "/appointments/"+apptID, ana)
		if appt["procedure"] != nil {
			t.Fatalf("expected null procedure, got %v", appt["procedure"])
		}
		if appt["conclusion_status"] != "pending" || appt["scheduled_at"] != "2026-03-01T12:30:00Z" {
			t.Fatalf("unexpected appointment: %v", appt)
		}
	}

	// 4) Un análisis => procedimiento Analysis
	create(t, ts.URL, "/analyses/", ana, map[string]any{"appointment_id": id(t, apptID), "analysis_type_id": id(t, typeID)})
	if p := procedure(t, ts.URL, apptID, ana); p["type"] != "Analysis" || p["name"] != "Blood" {
		t.Fatalf("expected Analysis procedure, got %v", p)
	}

	// 5) Una vacunación gana sobre el análisis
	create(t, ts.URL, "/vaccinations/", ana, map[string]any{
		"vaccine_id": id(t, vaccineID), "pet_id": id(t, petID), "appointment_id": id(t, apptID),
	})
	if p := procedure(t, ts.URL, apptID, ana); p["type"] != "Vaccination" || p["name"] != "Rabies" {
		t.Fatalf("expected Vaccination procedure, got %v", p)
	}

	// 6) PATCH status solo con appointments:review
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/appointments/"+apptID+"/status", ana, map[string]any{"status": "done"})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 status patch by user, got %d", st)
		}
		st, body := doReq(t, ts.URL, "PATCH", "/appointments/"+apptID+"/status", staff, map[string]any{"status": "done"})
		if st != http.StatusOK || decode(t, body)["status"] != "done" {
			t.Fatalf("expected 200 status patch by staff, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "PATCH", "/appointments/999/status", staff, map[string]any{"status": "done"})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown appointment, got %d", st)
		}
	}

	// 7) La clínica con citas no se borra
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/clinics/"+clinicID, staff, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 deleting clinic with appointments, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/clinics/"+clinicID, staff, nil)
		if st != http.StatusOK {
			t.Fatalf("expected clinic to remain, got %d", st)
		}
	}

	// 8) Borrar la cita arrastra vacunaciones y análisis; después sí se borra la clínica
	{
		st, body := doReq(t, ts.URL, "DELETE", "/appointments/"+apptID, ana, nil)
		if st != http.StatusOK || decode(t, body)["detail"] != "Appointment deleted" {
			t.Fatalf("expected 200 delete appointment, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/vaccinations/", ana, nil)
		if st != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
			t.Fatalf("expected no vaccinations, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/clinics/"+clinicID, staff, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete clinic, got %d", st)
		}
	}
}

func TestHTTP_BreedCascadeAndNotFound(t *testing.T) {
	ts := newServer(t)
	register(t, ts.URL, "Ana", "ana@example.com", "user")
	register(t, ts.URL, "Clinic", "staff@example.com", "service")
	ana := login(t, ts.URL, "ana@example.com")
	staff := login(t, ts.URL, "staff@example.com")

	breedID := create(t, ts.URL, "/breeds/", staff, map[string]any{"name": "Pug"})
	petID := create(t, ts.URL, "/pets/", ana, map[string]any{"name": "Otis", "age": 2, "breed_id": id(t, breedID)})
	medID := create(t, ts.URL, "/medicines/", staff, map[string]any{"name": "Dewormer", "period_hours": 12})
	takeID := create(t, ts.URL, "/medicine-takes/", ana, map[string]any{
		"medicine_id": id(t, medID), "pet_id": id(t, petID), "datetime": "2026-01-10T08:00:00Z",
	})
	if take := getJSON(t, ts.URL, "/medicine-takes/"+takeID, ana); take["next_due"] != "2026-01-10T20:00:00Z" {
		t.Fatalf("unexpected next_due: %v", take)
	}

	// 1) Borrar la raza borra la mascota y sus tomas
	{
		st, body := doReq(t, ts.URL, "DELETE", "/breeds/"+breedID, staff, nil)
		if st != http.StatusOK || decode(t, body)["detail"] != "Breed deleted" {
			t.Fatalf("expected 200 delete breed, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID, ana, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected pet gone after breed delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/medicine-takes/"+takeID, ana, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected take gone after breed delete, got %d", st)
		}
	}

	// 2) Ids desconocidos
	{
		st, body := doReq(t, ts.URL, "DELETE", "/breeds/"+breedID, staff, nil)
		if st != http.StatusNotFound || decode(t, body)["detail"] != "Breed not found" {
			t.Fatalf("expected 404 breed, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "GET", "/vaccines/42", ana, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 vaccine, got %d", st)
		}
	}

	// 3) JSON inválido
	{
		req, _ := http.NewRequest("POST", ts.URL+"/breeds/", strings.NewReader("{"))
		req.Header.Set("Authorization", "Bearer "+staff)
		req.Header.Set("Content-Type", "application/json")
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		_ = res.Body.Close()
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 malformed json, got %d", res.StatusCode)
		}
	}
}

func TestHTTP_DeleteUnknownIDIsNotFound(t *testing.T) {
	ts := newServer(t)
	register(t, ts.URL, "Clinic", "staff@example.com", "service")
	staff := login(t, ts.URL, "staff@example.com")

	cases := []struct {
		path   string
		detail string
	}{
		{"/breeds/", "Breed not found"},
		{"/pets/", "Pet not found"},
		{"/clinics/", "Clinic not found"},
		{"/vaccines/", "Vaccine not found"},
		{"/vaccinations/", "Vaccination not found"},
		{"/medicines/", "Medicine not found"},
		{"/medicine-takes/", "Medicine take not found"},
		{"/analysis-types/", "Analysis type not found"},
		{"/analyses/", "Analysis not found"},
		{"/appointments/", "Appointment not found"},
	}
	for _, tc := range cases {
		t.Run(strings.Trim(tc.path, "/"), func(t *testing.T) {
			st, body := doReq(t, ts.URL, "DELETE", tc.path+"999", staff, nil)
			if st != http.StatusNotFound || decode(t, body)["detail"] != tc.detail {
				t.Fatalf("DELETE %s999: expected 404 %q, got %d body=%s", tc.path, tc.detail, st, string(body))
			}
			st, body = doReq(t, ts.URL, "GET", tc.path+"999", staff, nil)
			if st != http.StatusNotFound || decode(t, body)["detail"] != tc.detail {
				t.Fatalf("GET %s999: expected 404 %q, got %d body=%s", tc.path, tc.detail, st, string(body))
			}
		})
	}
}

func TestHTTP_OutOfRangeInputIsBadRequest(t *testing.T) {
	ts := newServer(t)
	register(t, ts.URL, "Ana", "ana@example.com", "user")
	register(t, ts.URL, "Clinic", "staff@example.com", "service")
	ana := login(t, ts.URL, "ana@example.com")
	staff := login(t, ts.URL, "staff@example.com")

	breedID := create(t, ts.URL, "/breeds/", staff, map[string]any{"name": "Boxer"})
	clinicID := create(t, ts.URL, "/clinics/", staff, map[string]any{
		"name": "North", "address": "Elm St 2", "phone": "555-0101",
	})
	petID := create(t, ts.URL, "/pets/", ana, map[string]any{"name": "Max", "age": 4, "breed_id": id(t, breedID)})
	medID := create(t, ts.URL, "/medicines/", staff, map[string]any{"name": "Antibiotic", "period_hours": 8760})

	// 1) Un offset que lleva el instante UTC al año 10000
	{
		st, body := doReq(t, ts.URL, "POST", "/appointments/", ana, map[string]any{
			"pet_id": id(t, petID), "clinic_id": id(t, clinicID),
			"scheduled_at": "9999-12-31T23:00:00-05:00", "status": "scheduled",
		})
		if st != http.StatusBadRequest || decode(t, body)["detail"] != "scheduled_at is out of range" {
			t.Fatalf("expected 400 out-of-range scheduled_at, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "POST", "/medicine-takes/", ana, map[string]any{
			"medicine_id": id(t, medID), "pet_id": id(t, petID), "datetime": "9999-12-31T23:00:00-05:00",
		})
		if st != http.StatusBadRequest || decode(t, body)["detail"] != "datetime is out of range" {
			t.Fatalf("expected 400 out-of-range datetime, got %d body=%s", st, string(body))
		}
		for _, path := range []string{"/appointments/", "/medicine-takes/"} {
			st, body = doReq(t, ts.URL, "GET", path, ana, nil)
			if st != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
				t.Fatalf("expected 200 [] on %s, got %d body=%q", path, st, string(body))
			}
		}
	}

	// 2) Límites de age y period_hours
	{
		st, body := doReq(t, ts.URL, "POST", "/medicines/", staff, map[string]any{"name": "Slow", "period_hours": 3000000})
		if st != http.StatusBadRequest || decode(t, body)["detail"] != "period_hours must be at most 8760" {
			t.Fatalf("expected 400 huge period_hours, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "PUT", "/pets/"+petID, ana, map[string]any{
			"name": "Max", "age": 1000, "breed_id": id(t, breedID),
		})
		if st != http.StatusBadRequest || decode(t, body)["detail"] != "age must be at most 100" {
			t.Fatalf("expected 400 huge age, got %d body=%s", st, string(body))
		}
	}

	// 3) next_due con el periodo máximo
	takeID := create(t, ts.URL, "/medicine-takes/", ana, map[string]any{
		"medicine_id": id(t, medID), "pet_id": id(t, petID), "datetime": "2026-01-10T08:00:00Z",
	})
	if take := getJSON(t, ts.URL, "/medicine-takes/"+takeID, ana); take["next_due"] != "2027-01-10T08:00:00Z" {
		t.Fatalf("unexpected next_due: %v", take)
	}

	// 4) bcrypt no acepta más de 72 bytes
	{
		long := strings.Repeat("p", 80)
		st, body := doReq(t, ts.URL, "POST", "/users/register", "", map[string]any{
			"name": "Long", "email": "long@example.com", "password": long,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 long password on register, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "POST", "/users/me/password", ana, map[string]any{
			"old_password": "secret", "new_password": long,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 long new_password, got %d body=%s", st, string(body))
		}
	}
}

func TestSwaggerDocCoversEveryRoute(t *testing.T) {
	routes, ok := newHandler(t).(chi.Routes)
	if !ok {
		t.Fatalf("router does not expose chi.Routes")
	}

	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("read swagger doc: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("swagger doc is not valid json: %v", err)
	}

	documented := 0
	for _, ops := range doc.Paths {
		documented += len(ops)
	}

	registered := 0
	err = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route == "/health" || strings.HasPrefix(route, "/swagger/") {
			return nil
		}
		registered++
		if _, ok := doc.Paths[route][strings.ToLower(method)]; !ok {
			t.Errorf("%s %s is not documented", method, route)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if documented != registered {
		t.Fatalf("swagger documents %d operations, router has %d", documented, registered)
	}
}

func register(t *testing.T, baseURL, name, email, role string) {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/users/register", "", map[string]any{
		"name": name, "email": email, "password": "secret", "role": role,
	})
	if st != http.StatusOK {
		t.Fatalf("register %s: got %d body=%s", email, st, string(body))
	}
}

func login(t *testing.T, baseURL, email string) string {
	t.Helper()
	st, body := postForm(t, baseURL, "/users/login", email, "secret")
	if st != http.StatusOK {
		t.Fatalf("login %s: got %d body=%s", email, st, string(body))
	}
	out := decode(t, body)
	if out["token_type"] != "bearer" {
		t.Fatalf("unexpected token type: %v", out)
	}
	return out["access_token"].(string)
}

func postForm(t *testing.T, baseURL, path, username, pw string) (int, []byte) {
	t.Helper()
	form := url.Values{"username": {username}, "password": {pw}}
	res, err := http.Post(baseURL+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}

func sign(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

// create hace POST y devuelve el id creado como string.
func create(t *testing.T, baseURL, path, token string, body map[string]any) string {
	t.Helper()
	st, b := doReq(t, baseURL, "POST", path, token, body)
	if st != http.StatusOK {
		t.Fatalf("POST %s: got %d body=%s", path, st, string(b))
	}
	out := decode(t, b)
	n, ok := out["id"].(float64)
	if !ok || n <= 0 {
		t.Fatalf("POST %s: missing id in %s", path, string(b))
	}
	return strconv.FormatInt(int64(n), 10)
}

func getJSON(t *testing.T, baseURL, path, token string) map[string]any {
	t.Helper()
	st, b := doReq(t, baseURL, "GET", path, token, nil)
	if st != http.StatusOK {
		t.Fatalf("GET %s: got %d body=%s", path, st, string(b))
	}
	return decode(t, b)
}

func procedure(t *testing.T, baseURL, apptID, token string) map[string]any {
	t.Helper()
	p, _ := getJSON(t, baseURL, "/appointments/"+apptID, token)["procedure"].(map[string]any)
	return p
}

func id(t *testing.T, s string) int64 {
	t.Helper()
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		t.Fatalf("bad id %q", s)
	}
	return n
}

func decode(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("decode %s: %v", string(b), err)
	}
	return out
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}

	req, _ := http.NewRequest(method, baseURL+path, r)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}
