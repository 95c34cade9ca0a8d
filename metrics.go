package bsp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const errTypeLabel = "error_type"

var (
	buildsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bsp_builds_started",
		Help: "The number of tree builds started.",
	})

	buildsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bsp_builds_completed",
		Help: "The number of tree builds that produced a tree.",
	})

	buildErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bsp_build_errors",
		Help: "The errors that aborted a tree build.",
	}, []string{
		errTypeLabel,
	})

	polygonsSplit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bsp_polygons_split",
		Help: "The number of polygons cut in two by a splitting plane.",
	})

	polygonsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bsp_polygons_dropped",
		Help: "The number of input polygons dropped for degenerate geometry.",
	})

	nodesProduced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bsp_nodes_produced",
		Help: "The number of tree nodes produced, internal and leaf.",
	})
)
