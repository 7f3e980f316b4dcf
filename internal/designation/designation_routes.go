package designation

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	designations := r.Group("/designations")

	{
		designations.POST("", h.Create)
		designations.GET("/department/:departmentId", h.GetAllByDepartment)
		designations.DELETE("/:id", h.Delete)
	}
}
