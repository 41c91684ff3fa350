package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"Community_Board/internal/model"
)

var registerOnce sync.Once

// RegisterValidators 注册自定义校验规则，并让错误里的字段名使用 json 名称
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := registerRules(v); err != nil {
			panic(fmt.Sprintf("register validators: %v", err))
		}
	})
}

func registerRules(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v.RegisterValidation("topic", func(fl validator.FieldLevel) bool {
		return model.Topic(fl.Field().String()).Valid()
	})
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// bindFailed 校验失败返回 422 和字段明细，JSON 本身不合法返回 400
func bindFailed(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	details := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		details = append(details, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"msg":    "validation failed",
		"errors": details,
	})
}
