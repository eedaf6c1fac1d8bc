package component

type ActorTag struct{}

var ActorTagComponent = NewComponent[ActorTag]()

type WallTag struct{}

var WallTagComponent = NewComponent[WallTag]()
