package utils

import (
	"bytes"
	"fmt"
	"runtime"
	"time"
)

// PanicTrace 格式化 panic 时的调用栈
func PanicTrace(err interface{}) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%v\n", err)
	for i := 2; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fmt.Fprintf(buf, "%s:%d (0x%x)\n", file, line, pc)
	}
	return buf.String()
}

// Now 当前 UTC 时间，精确到秒（DATETIME 列不保存更小的精度）
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
