package studio

import (
	"context"

	"github.com/BruksfildServices01/studio-rental/internal/imaging"
	"github.com/BruksfildServices01/studio-rental/internal/infra/storage"
)

type storedImage struct {
	original string
	thumb    string
}

// storeImage grava o original e a miniatura WebP. Se a segunda etapa
// falhar, o original é liberado.
func storeImage(ctx context.Context, st storage.Storage, data []byte) (*storedImage, error) {
	info, err := imaging.Inspect(data)
	if err != nil {
		return nil, imaging.AsValidation("image", err)
	}

	original, err := st.Put(ctx, storage.FolderStudios, storage.ObjectName(info.Ext), info.ContentType, data)
	if err != nil {
		return nil, err
	}

	thumbData, err := imaging.Thumbnail(data, imaging.ThumbnailWidth)
	if err != nil {
		storage.Release(ctx, st, original)
		return nil, err
	}

	thumb, err := st.Put(ctx, storage.FolderStudioThumbs, storage.ObjectName(".webp"), "image/webp", thumbData)
	if err != nil {
		storage.Release(ctx, st, original)
		return nil, err
	}

	return &storedImage{original: original, thumb: thumb}, nil
}

func (img *storedImage) release(ctx context.Context, st storage.Storage) {
	if img == nil {
		return
	}
	storage.Release(ctx, st, img.original)
	storage.Release(ctx, st, img.thumb)
}

func releasePaths(ctx context.Context, st storage.Storage, paths ...*string) {
	for _, p := range paths {
		if p != nil {
			storage.Release(ctx, st, *p)
		}
	}
}
