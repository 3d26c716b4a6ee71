package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-loan-service/internal/domain/identity"
	"employee-loan-service/internal/testutil/identitymock"

	"github.com/labstack/echo/v4"
)

func setupActorEcho(principals identity.Repository) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(ActorResolver(principals))
	e.GET("/whoami", func(c echo.Context) error {
		a, ok := ActorFrom(c)
		if !ok {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "no actor"})
		}
		return c.JSON(http.StatusOK, map[string]string{"user_id": a.UserID, "role": string(a.Role)})
	})
	return e
}

func doActorReq(e *echo.Echo, actorID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if actorID != "" {
		req.Header.Set("Ax-Actor-Id", actorID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestActorResolver_Success(t *testing.T) {
	uid := "dddddddddddddddddddddddddddddddd"
	principals := &identitymock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*identity.Principal, error) {
			if userID != uid {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return &identity.Principal{UserID: uid, Role: identity.RoleLoanOfficer}, nil
		},
	}
	e := setupActorEcho(principals)

	rec := doActorReq(e, uid)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestActorResolver_MissingHeader(t *testing.T) {
	e := setupActorEcho(&identitymock.Repo{})
	rec := doActorReq(e, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing header => want 401, got %d", rec.Code)
	}
}

func TestActorResolver_MalformedID(t *testing.T) {
	e := setupActorEcho(&identitymock.Repo{})
	for _, bad := range []string{"not-hex", "abc", "ZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZ"} {
		rec := doActorReq(e, bad)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%q => want 401, got %d", bad, rec.Code)
		}
	}
}

func TestActorResolver_UnknownActor(t *testing.T) {
	principals := &identitymock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*identity.Principal, error) {
			return nil, identity.ErrNotFound
		},
	}
	e := setupActorEcho(principals)

	rec := doActorReq(e, "dddddddddddddddddddddddddddddddd")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown actor => want 401, got %d", rec.Code)
	}
}
