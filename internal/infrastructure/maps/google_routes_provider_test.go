package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TurnSeq-App/internal/domain/model"
)

func TestGoogleRoutesProvider_ComputeRoute(t *testing.T) {
	origin := model.LatLng{Lat: 34.9853, Lng: 135.7581}
	destination := model.LatLng{Lat: 35.0116, Lng: 135.7681}

	t.Run("マニューバ列を取り出す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))
			assert.Equal(t, "routes.legs.steps.navigationInstruction.maneuver", r.Header.Get("X-Goog-FieldMask"))

			var body routesRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 34.9853, body.Origin.Location.LatLng.Latitude)
			assert.Equal(t, 135.7581, body.Origin.Location.LatLng.Longitude)
			assert.Equal(t, "DRIVE", body.TravelMode)

			fmt.Fprint(w, `{
				"routes": [{
					"legs": [{
						"steps": [
							{"navigationInstruction": {"maneuver": "TURN_LEFT"}},
							{"navigationInstruction": {"maneuver": "STRAIGHT"}},
							{"navigationInstruction": {"maneuver": "TURN_RIGHT"}}
						]
					}]
				}]
			}`)
		}))
		defer server.Close()

		provider := NewGoogleRoutesProviderWithBaseURL("test-key", server.URL)
		maneuvers, err := provider.ComputeRoute(context.Background(), origin, destination)
		require.NoError(t, err)
		assert.Equal(t, []string{"TURN_LEFT", "STRAIGHT", "TURN_RIGHT"}, maneuvers)
	})

	t.Run("同一座標はリクエストせずに前提条件違反", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		provider := NewGoogleRoutesProviderWithBaseURL("test-key", server.URL)
		_, err := provider.ComputeRoute(context.Background(), origin, origin)
		assert.ErrorIs(t, err, model.ErrSameLocation)
		assert.False(t, called)
	})

	t.Run("経路なしレスポンスは空のスライス", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{}`)
		}))
		defer server.Close()

		provider := NewGoogleRoutesProviderWithBaseURL("test-key", server.URL)
		maneuvers, err := provider.ComputeRoute(context.Background(), origin, destination)
		require.NoError(t, err)
		assert.Empty(t, maneuvers)
	})

	t.Run("エラーペイロードはRemoteError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"error": {"code": 400, "message": "Invalid request.", "status": "INVALID_ARGUMENT"}}`)
		}))
		defer server.Close()

		provider := NewGoogleRoutesProviderWithBaseURL("test-key", server.URL)
		_, err := provider.ComputeRoute(context.Background(), origin, destination)
		assert.ErrorIs(t, err, model.ErrRemoteService)
	})
}
