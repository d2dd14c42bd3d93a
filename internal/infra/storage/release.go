package storage

import (
	"context"
	"log"
	"path"

	"github.com/BruksfildServices01/studio-rental/internal/metrics"
)

// Release apaga key sem propagar erro: falha vira log e métrica.
func Release(ctx context.Context, st Storage, key string) {
	if st == nil || key == "" {
		return
	}
	if err := st.Delete(context.WithoutCancel(ctx), key); err != nil {
		log.Printf("file release failed path=%s err=%v", key, err)
		metrics.FileReleaseFailed(path.Dir(key))
	}
}
