package pipeline

import "github.com/zsiec/transcode/media"

// Router is the outbound API the pipeline calls on the parent application.
// Accepting an interface here decouples the pipeline from any concrete
// media-router implementation.
type Router interface {
	CreateStream(output *media.StreamDescriptor)
	DeleteStream(output *media.StreamDescriptor)
	SendFrame(output *media.StreamDescriptor, pkt *media.Packet)
}
