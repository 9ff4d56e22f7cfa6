package api

import (
	"agri_commerce/internal/domain" // Error taxonomy
	"errors"                        // Error inspection
	"net/http"                      // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Response messages
const (
	MsgInvalidRequest      = "Requête invalide."
	MsgInvalidData         = "Données invalides."
	MsgInvalidID           = "Identifiant invalide."
	MsgUserNotFound        = "Utilisateur non trouvé."
	MsgProductNotFound     = "Produit non trouvé."
	MsgOrderNotFound       = "Commande non trouvée."
	MsgPaymentNotFound     = "Paiement non trouvé."
	MsgNotFound            = "Ressource non trouvée."
	MsgEmailTaken          = "Cet email est déjà utilisé."
	MsgUserCreated         = "Utilisateur créé avec succès."
	MsgUserUpdated         = "Utilisateur mis à jour avec succès."
	MsgUserDeleted         = "Utilisateur supprimé avec succès."
	MsgProductCreated      = "Produit créé avec succès."
	MsgProductUpdated      = "Produit mis à jour avec succès."
	MsgProductDeleted      = "Produit supprimé avec succès."
	MsgOrderCreated        = "Commande créée avec succès."
	MsgOrderUpdated        = "Commande mise à jour avec succès."
	MsgOrderDeleted        = "Commande supprimée avec succès."
	MsgPaymentCreated      = "Paiement créé avec succès."
	MsgPaymentUpdated      = "Paiement mis à jour avec succès."
	MsgLoginSuccess        = "Connexion réussie."
	MsgInvalidCredentials  = "Identifiants invalides."
	MsgCredentialsRequired = "Nom d'utilisateur et mot de passe requis."
	MsgAPIRunning          = "API AgriCommerce opérationnelle."
)

// translate turns store sentinels into errors carrying a response message
func translate(err error, notFound string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return &domain.NotFoundError{Message: notFound}
	case errors.Is(err, domain.ErrDuplicate):
		// email is the only unique column besides primary keys
		return &domain.ConflictError{Message: MsgEmailTaken}
	default:
		return err
	}
}

// respondError is the single place where errors become HTTP responses
func respondError(c *gin.Context, err error) {
	var (
		validationErr   *domain.ValidationError
		conflictErr     *domain.ConflictError
		notFoundErr     *domain.NotFoundError
		unauthorizedErr *domain.UnauthorizedError
		storeErr        *domain.StoreError
	)
	switch {
	case errors.As(err, &validationErr):
		body := gin.H{"error": validationErr.Message}
		if len(validationErr.Fields) > 0 {
			body["errors"] = validationErr.Fields // One entry per failing field
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, body)
	case errors.As(err, &conflictErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": conflictErr.Message})
	case errors.As(err, &notFoundErr):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": notFoundErr.Message})
	case errors.Is(err, domain.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": MsgNotFound})
	case errors.As(err, &unauthorizedErr):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthorizedErr.Message})
	default:
		fields := logrus.Fields{
			"method": c.Request.Method, // Request method
			"path":   c.FullPath(),     // Route template
			"error":  err.Error(),      // Error message
		}
		if errors.As(err, &storeErr) {
			fields["op"] = storeErr.Op // Store operation that failed
		}
		logrus.WithFields(fields).Error("Request failed")
		// Store failures are passed through verbatim
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
