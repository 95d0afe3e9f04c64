package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/application/service"
	"github.com/pastesytony/pos-api/internal/domain/entity"
)

// GetEmployeeID extracts the employee ID from the Gin context
func GetEmployeeID(c *gin.Context) uuid.UUID {
	value, exists := c.Get("employee_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// GetEmployeeName extracts the employee name from the Gin context
func GetEmployeeName(c *gin.Context) string {
	value, exists := c.Get("employee_name")
	if !exists {
		return ""
	}
	name, _ := value.(string)
	return name
}

// GetBranchID extracts the branch ID from the Gin context
func GetBranchID(c *gin.Context) uuid.UUID {
	value, exists := c.Get("branch_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// GetIdentity builds the register identity for service calls
func GetIdentity(c *gin.Context) service.Identity {
	return service.Identity{
		EmployeeID:   GetEmployeeID(c),
		EmployeeName: GetEmployeeName(c),
		BranchID:     GetBranchID(c),
	}
}

// IsAdmin checks if the session belongs to an admin employee
func IsAdmin(c *gin.Context) bool {
	value, exists := c.Get("employee_role")
	if !exists {
		return false
	}
	role, _ := value.(string)
	return role == entity.RoleAdmin
}
