package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

// Trans 全局翻译器，InitTrans 之后可用
var Trans ut.Translator

// InitTrans 初始化 validator 错误信息翻译器
// locale 为 "zh" 或 "en"，其他值按英文处理
func InitTrans(locale string) (err error) {
	if binding.Validator == nil {
		binding.Validator = &defaultValidator{validator: validator.New()}
	}

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	// 报错信息使用 json/form/uri 中的字段名，而不是 Go 结构体字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "uri"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	zhT := zh.New()
	enT := en.New()
	uni := ut.New(enT, zhT, enT)

	Trans, ok = uni.GetTranslator(locale)
	if !ok {
		return fmt.Errorf("uni.GetTranslator(%s) failed", locale)
	}

	switch locale {
	case "zh":
		err = zh_translations.RegisterDefaultTranslations(v, Trans)
	default:
		err = en_translations.RegisterDefaultTranslations(v, Trans)
	}
	return
}

// RemoveTopStruct 去除提示信息中的结构体名称前缀，如 "GetUsersPageRequest.pageSize" -> "pageSize"
func RemoveTopStruct(fields map[string]string) map[string]string {
	res := make(map[string]string, len(fields))
	for field, err := range fields {
		res[field[strings.Index(field, ".")+1:]] = err
	}
	return res
}

// defaultValidator 在 binding.Validator 为空时兜底
type defaultValidator struct {
	validator *validator.Validate
}

func (v *defaultValidator) ValidateStruct(obj interface{}) error {
	return v.validator.Struct(obj)
}

func (v *defaultValidator) Engine() interface{} {
	return v.validator
}
