package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"

	"github.com/doja-oual/portfolio-backend/internal/utils"
)

// GraphQLHandler serves the single POST /graphql endpoint. Query
// parsing and execution are delegated to the engine; all domain errors
// come back in the response's error list with HTTP 200.
type GraphQLHandler struct {
	schema graphql.Schema
}

func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

func (h *GraphQLHandler) Serve(c *gin.Context) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad := utils.E(utils.CodeInvalidArgument, "GraphQLHandler.Serve", "Requête invalide", err)
		c.JSON(utils.HTTPStatus(bad), gin.H{"errors": []gin.H{
			{"message": utils.SafeMessage(bad)},
		}})
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request.Context(),
	})

	c.JSON(http.StatusOK, result)
}
