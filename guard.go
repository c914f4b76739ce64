package watermark

import "log/slog"

// guardSurface removes surface from target as soon as any of its
// attributes change. The structural watcher then mounts a fresh surface.
func guardSurface(host Host, target Element, surface Canvas, log *slog.Logger) Subscription {
	return host.ObserveAttributes(surface, func(records []Mutation) {
		if len(records) == 0 {
			return
		}
		log.Debug("surface tampered, removing", "attribute", records[0].AttributeName)
		if err := target.RemoveChild(surface); err != nil {
			log.Debug("remove tampered surface", "error", err)
		}
	})
}
