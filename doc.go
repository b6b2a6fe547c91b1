// Package lvshape processes text files of triangles and pyramids: it
// validates every line, builds immutable shapes, computes their metrics and
// keeps a queryable, observable collection of them.
//
// What's inside?
//
//	geom/       Point, Point3D, Triangle, Pyramid, Kind, Plane, Epsilon
//	validate/   numeric grammar, coordinate lines and geometric legality
//	factory/    validated construction of Triangle and Pyramid
//	ingest/     line-oriented file reader with per-line error collection
//	calc/       area, perimeter, classification, volume, cut ratio
//	warehouse/  id → metrics cache, kept current as a repository observer
//	repository/ ordered shape collection with observers, search and sort
//	query/      composable specifications and comparators
//	config/     YAML + environment configuration for the CLI
//	logging/    zap logger construction
//	render/     terminal reports
//	cmd/lvshape the `report` and `query` commands
//
// Text format, one shape per line ('#' starts a comment line):
//
//	TRIANGLE x1 y1 x2 y2 x3 y3
//	PYRAMID  x1 y1 z1 x2 y2 z2 x3 y3 z3 x4 y4 z4 ax ay az
//
// Quick example:
//
//	res, err := ingest.ReadShapesFromFile("shapes.txt")
//	if err != nil {
//		return err // file could not be read at all
//	}
//	store := warehouse.New()
//	repo := repository.New(repository.WithObserver(store))
//	repo.AddAll(res.Shapes...)
//	big := repo.FindBySpecification(query.AreaInRange{Source: store, Range: query.Range{Min: 10, Max: 100}})
//
// Thread-safety: Repository and MetricsStore guard their state with
// sync.RWMutex; shapes are immutable after construction.
package lvshape
