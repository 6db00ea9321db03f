package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/internal/transport/api/middlewares"
)

const defaultPerPage = 20

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// getIDParam парсит path-параметр :id. Невалидное значение возвращается как 0.
func getIDParam(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0
	}
	return id
}

// getPageFromQuery собирает параметры пагинации из query. Невалидные значения
// заменяются дефолтами.
func getPageFromQuery(c *gin.Context) repoargs.Page {
	page, pageErr := strconv.ParseUint(c.Query("page"), 10, 32)
	if pageErr != nil || page < 1 {
		page = 1
	}
	perPage, perPageErr := strconv.ParseUint(c.Query("per_page"), 10, 32)
	if perPageErr != nil || perPage < 1 || perPage > 100 {
		perPage = defaultPerPage
	}
	return repoargs.Page{Number: uint(page), PerPage: uint(perPage)}
}
