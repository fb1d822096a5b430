package shaders

// Storage and image binding points shared by ComputeSrc and the host code.
const (
	PositionsBinding = 3
	NormalsBinding   = 4
	ImageUnit        = 0
)

const (
	VertexSrc = `
	#version 450 core
	layout(location = 0) in vec2 pos;
	out vec2 coord;
	void main() {
		gl_Position = vec4(pos, 0.0, 1.0);
		coord = 0.5 * pos + vec2(0.5, 0.5);
	}
	` + "\x00"

	FragmentSrc = `
	#version 450 core
	in vec2 coord;
	out vec4 final_col;
	layout(binding = 0) uniform sampler2D img_output;
	void main() {
		final_col = texture(img_output, coord);
	}
	` + "\x00"

	ComputeSrc = `
	#version 450 core
	layout(local_size_x = 8, local_size_y = 8) in;

	// texture to write to
	layout(binding = 0, rgba32f) uniform image2D img_output;

	// flat triangle list: 9 floats per triangle, 3 per corner
	layout(std430, binding = 3) readonly buffer positions
	{
		float position_comp[];
	};
	layout(std430, binding = 4) readonly buffer normals
	{
		float normal_comp[];
	};

	uniform vec3 cam_origin;
	uniform vec3 cam_forward;
	uniform vec3 cam_right;
	uniform vec3 cam_up;
	uniform float tan_half_fovy;
	uniform vec3 light_dir;

	// minimum "distance" to prevent self-intersection
	const float EPSILON = 0.0000001;

	vec3 corner(int c) {
		return vec3(position_comp[3*c], position_comp[3*c+1], position_comp[3*c+2]);
	}

	vec3 corner_normal(int c) {
		return vec3(normal_comp[3*c], normal_comp[3*c+1], normal_comp[3*c+2]);
	}

	// möller trumbore triangle intersection, u and v are barycentric
	bool intersects(vec3 ray_origin, vec3 ray_dir, vec3 p0, vec3 p1, vec3 p2, out float d, out float u, out float v) {
		vec3 edge1 = p1 - p0;
		vec3 edge2 = p2 - p0;
		vec3 h = cross(ray_dir, edge2);
		float a = dot(edge1, h);
		if (a > -EPSILON && a < EPSILON)
			return false;
		float f = 1.0/a;
		vec3 s = ray_origin - p0;
		u = f * dot(s, h);
		if (u < 0.0 || u > 1.0)
			return false;
		vec3 q = cross(s, edge1);
		v = f * dot(ray_dir, q);
		if (v < 0.0 || u + v > 1.0)
			return false;
		d = f * dot(edge2, q);
		return d > EPSILON && d < 1/EPSILON;
	}

	void main() {
		ivec2 pixel_coord = ivec2(gl_GlobalInvocationID.xy);
		ivec2 size = imageSize(img_output);
		if (pixel_coord.x >= size.x || pixel_coord.y >= size.y)
			return;

		vec2 ndc = (vec2(pixel_coord) + 0.5) / vec2(size) * 2.0 - 1.0;
		float aspect = float(size.x) / float(size.y);
		vec3 ray_dir = normalize(cam_forward
			+ ndc.x * aspect * tan_half_fovy * cam_right
			+ ndc.y * tan_half_fovy * cam_up);

		vec4 pixel = vec4(0.0, 0.0, 0.0, 1.0);
		float min_d = 1/EPSILON;
		int corners = position_comp.length() / 3;
		for (int c = 0; c + 2 < corners; c += 3) {
			float d, u, v;
			if (intersects(cam_origin, ray_dir, corner(c), corner(c+1), corner(c+2), d, u, v) && d < min_d) {
				min_d = d;
				vec3 n = normalize((1.0 - u - v) * corner_normal(c) + u * corner_normal(c+1) + v * corner_normal(c+2));
				float lambert = max(dot(n, -light_dir), 0.0);
				pixel = vec4(vec3(0.1 + 0.9 * lambert), 1.0);
			}
		}

		imageStore(img_output, pixel_coord, pixel);
	}
	` + "\x00"
)
