package wrapper

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/golangid/questionario-service/pkg/helper"
	"github.com/stretchr/testify/assert"
)

func TestNewHTTPResponse(t *testing.T) {
	type Data struct {
		ID string `json:"id"`
	}

	multiError := helper.NewMultiError()
	multiError.Append("test", fmt.Errorf("error test"))

	type args struct {
		code    int
		message string
		params  []interface{}
	}
	tests := []struct {
		name string
		args args
		want *HTTPResponse
	}{
		{
			name: "Testcase #1: Response data detail",
			args: args{
				code:    http.StatusOK,
				message: "Get detail data",
				params: []interface{}{
					Data{ID: "061499700032"},
				},
			},
			want: &HTTPResponse{
				Success: true,
				Code:    200,
				Message: "Get detail data",
				Data:    Data{ID: "061499700032"},
			},
		},
		{
			name: "Testcase #2: Response only message (without data)",
			args: args{
				code:    http.StatusOK,
				message: "list data empty",
			},
			want: &HTTPResponse{
				Success: true,
				Code:    200,
				Message: "list data empty",
			},
		},
		{
			name: "Testcase #3: Response error with multierror",
			args: args{
				code:    http.StatusBadRequest,
				message: "invalid request",
				params:  []interface{}{multiError},
			},
			want: &HTTPResponse{
				Success: false,
				Code:    400,
				Message: "invalid request",
				Errors:  map[string]string{"test": "error test"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewHTTPResponse(tt.args.code, tt.args.message, tt.args.params...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewHTTPResponse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHTTPResponseJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	err := NewHTTPResponse(http.StatusAccepted, "accepted").JSON(rec)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, helper.HeaderMIMEApplicationJSON, rec.Header().Get("Content-Type"))
}
