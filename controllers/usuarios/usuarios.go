package usuarios

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/miguelantonio01/mac-garden/models"
	"github.com/miguelantonio01/mac-garden/pkg/apperrors"
)

type RegistroRequest struct {
	Nombre      string `json:"nombre"`
	Email       string `json:"email"`
	Telefono    string `json:"telefono"`
	Password    string `json:"password"`
	Direccion   string `json:"direccion"`
	Ciudad      string `json:"ciudad"`
	TipoCliente string `json:"tipo_cliente"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func respondError(c *gin.Context, err *apperrors.AppError) {
	c.JSON(err.HTTPStatus(), gin.H{"error": err.Message})
}

// POST /api/usuarios/registro
func RegistroHandler(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegistroRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.NewValidation("Datos de registro inválidos"))
			return
		}

		req.Email = strings.TrimSpace(strings.ToLower(req.Email))
		if req.Nombre == "" || req.Email == "" || req.Password == "" {
			respondError(c, apperrors.NewValidation("Nombre, email y password son requeridos"))
			return
		}

		tipoCliente := models.TipoClienteMinorista
		if req.TipoCliente != "" {
			switch models.TipoCliente(strings.ToLower(req.TipoCliente)) {
			case models.TipoClienteMinorista:
				tipoCliente = models.TipoClienteMinorista
			case models.TipoClienteMayorista:
				tipoCliente = models.TipoClienteMayorista
			default:
				respondError(c, apperrors.NewValidation("Tipo de cliente inválido"))
				return
			}
		}

		var existente models.Usuario
		if err := db.Where("email = ?", req.Email).First(&existente).Error; err == nil {
			respondError(c, apperrors.NewConflict("El email ya está registrado"))
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("Error verificando email", zap.Error(err))
			respondError(c, apperrors.NewInternal("Error registrando usuario"))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("Error generando hash", zap.Error(err))
			respondError(c, apperrors.NewInternal("Error registrando usuario"))
			return
		}

		usuario := models.Usuario{
			Nombre:      req.Nombre,
			Email:       req.Email,
			Telefono:    req.Telefono,
			Password:    string(hash),
			Direccion:   req.Direccion,
			Ciudad:      req.Ciudad,
			TipoCliente: tipoCliente,
		}
		if err := db.Create(&usuario).Error; err != nil {
			// El índice único cubre la carrera entre el check y el insert.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				respondError(c, apperrors.NewConflict("El email ya está registrado"))
				return
			}
			log.Error("Error creando usuario", zap.Error(err))
			respondError(c, apperrors.NewInternal("Error registrando usuario"))
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"id":      usuario.ID,
			"message": "Usuario registrado correctamente",
		})
	}
}

// POST /api/usuarios/login
func LoginHandler(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			respondError(c, apperrors.NewValidation("Email y password son requeridos"))
			return
		}

		var usuario models.Usuario
		err := db.Where("email = ? AND activo = ?",
			strings.TrimSpace(strings.ToLower(req.Email)), true).First(&usuario).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondError(c, apperrors.NewUnauthorized("Credenciales inválidas"))
				return
			}
			log.Error("Error buscando usuario", zap.Error(err))
			respondError(c, apperrors.NewInternal("Error iniciando sesión"))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(req.Password)); err != nil {
			respondError(c, apperrors.NewUnauthorized("Credenciales inválidas"))
			return
		}

		// El hash nunca viaja al cliente (json:"-" en el modelo).
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"usuario": usuario,
			"message": "Sesión iniciada correctamente",
		})
	}
}

// GET /api/usuarios/:id
func GetUsuarioHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var usuario models.Usuario
		if err := db.First(&usuario, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondError(c, apperrors.NewNotFound("Usuario no encontrado"))
				return
			}
			respondError(c, apperrors.NewInternal("Error obteniendo usuario"))
			return
		}

		c.JSON(http.StatusOK, usuario)
	}
}
