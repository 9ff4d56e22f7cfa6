package api

import (
	"net/http"
	"testing"

	"agri_commerce/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestPaymentHandlers(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		s := newFakeStore()
		r := newTestRouter(t, s, routerDeps{})

		w := do(r, http.MethodPost, "/api/payments", `{"order_id":3,"amount":45.5,"payment_method":"mobile_money"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		body := decode(t, w)
		require.Equal(t, MsgPaymentCreated, body["message"])
		payment := body["payment"].(map[string]any)
		require.Equal(t, float64(3), payment["order_id"])
		require.Equal(t, 45.5, payment["amount"])
		require.Equal(t, "mobile_money", payment["payment_method"])
		require.Equal(t, domain.PaymentStatusPending, payment["status"])
	})

	t.Run("Create_RequiresFields", func(t *testing.T) {
		s := newFakeStore()
		r := newTestRouter(t, s, routerDeps{})

		w := do(r, http.MethodPost, "/api/payments", `{"order_id":3}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "Champs requis manquants : amount, payment_method.", decode(t, w)["error"])
		require.Zero(t, s.callCount())
	})

	t.Run("ListIsAscending", func(t *testing.T) {
		s := newFakeStore()
		r := newTestRouter(t, s, routerDeps{})
		for _, id := range []uint{9, 2, 5} {
			s.payments[id] = domain.Payment{ID: id, OrderID: 1, Amount: 1, PaymentMethod: "card", Status: "pending"}
		}

		w := do(r, http.MethodGet, "/api/payments", "")
		require.Equal(t, http.StatusOK, w.Code)
		payments := decode(t, w)["payments"].([]any)
		require.Len(t, payments, 3)
		var ids []float64
		for _, p := range payments {
			ids = append(ids, p.(map[string]any)["id"].(float64))
		}
		require.Equal(t, []float64{2, 5, 9}, ids)
	})

	t.Run("Get", func(t *testing.T) {
		s := newFakeStore()
		r := newTestRouter(t, s, routerDeps{})
		s.payments[5] = domain.Payment{ID: 5, OrderID: 1, Amount: 10, PaymentMethod: "card", Status: "pending"}

		w := do(r, http.MethodGet, "/api/payments/5", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, float64(5), decode(t, w)["payment"].(map[string]any)["id"])

		w = do(r, http.MethodGet, "/api/payments/6", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, MsgPaymentNotFound, decode(t, w)["error"])

		w = do(r, http.MethodGet, "/api/payments/abc", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, MsgInvalidID, decode(t, w)["error"])
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		s := newFakeStore()
		r := newTestRouter(t, s, routerDeps{})
		s.payments[5] = domain.Payment{ID: 5, OrderID: 1, Amount: 10, PaymentMethod: "card", Status: "pending"}

		w := do(r, http.MethodPut, "/api/payments/5", `{"status":"completed"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "completed", decode(t, w)["payment"].(map[string]any)["status"])

		w = do(r, http.MethodPut, "/api/payments/6", `{"status":"completed"}`)
		require.Equal(t, http.StatusNotFound, w.Code)

		w = do(r, http.MethodPut, "/api/payments/5", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Delete_NoContentThenNotFound", func(t *testing.T) {
		s := newFakeStore()
		r := newTestRouter(t, s, routerDeps{})
		s.payments[5] = domain.Payment{ID: 5, OrderID: 1, Amount: 10, PaymentMethod: "card", Status: "pending"}

		w := do(r, http.MethodDelete, "/api/payments/5", "")
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Empty(t, w.Body.String())

		w = do(r, http.MethodDelete, "/api/payments/5", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, MsgPaymentNotFound, decode(t, w)["error"])
	})
}
