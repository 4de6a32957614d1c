package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// respond builds the proxy response the platform expects. The body is
// always a JSON-encoded string.
func respond(statusCode int, message string) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(message) //nolint:errcheck // marshalling a string cannot fail
	return events.APIGatewayProxyResponse{
		IsBase64Encoded: false,
		StatusCode:      statusCode,
		Body:            string(body),
	}
}

func respondOK(message string) events.APIGatewayProxyResponse {
	return respond(http.StatusOK, message)
}

func respondBadRequest(message string) events.APIGatewayProxyResponse {
	return respond(http.StatusBadRequest, message)
}

func respondInternalError(message string) events.APIGatewayProxyResponse {
	return respond(http.StatusInternalServerError, message)
}
